package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-html2tei"
	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/fetch"
	"github.com/alnah/go-html2tei/internal/fileutil"
)

// filePermissions is used for TEI files and reports.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// conversionParams holds the settings shared by all jobs of a batch.
type conversionParams struct {
	remote  fetch.Fetcher // nil when every job reads local files
	files   fetch.Fetcher
	workers int       // parallel page fetches per drama
	report  string    // config.ReportNone, ReportMarkdown or ReportHTML
	stdout  io.Writer // non-nil: write the XML here instead of a file
	log     zerolog.Logger
}

// newConversionParams creates the fetchers the jobs need. Call close when
// the batch is done.
func newConversionParams(jobs []job, flags *convertFlags, cfg *config.Config, env *Environment, log zerolog.Logger) (*conversionParams, error) {
	params := &conversionParams{
		files:   fetch.NewFileFetcher(),
		workers: cfg.Fetch.Workers,
		report:  cfg.Output.Report,
		log:     log,
	}
	if flags.output.stdout {
		params.stdout = env.Stdout
	}

	for _, j := range jobs {
		if !j.remote {
			continue
		}
		f, err := env.NewFetcher(cfg.Fetch)
		if err != nil {
			return nil, err
		}
		params.remote = f
		break
	}
	return params, nil
}

// close releases the fetchers. Browser shutdown errors are logged only.
func (p *conversionParams) close() {
	for _, f := range []fetch.Fetcher{p.remote, p.files} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			p.log.Warn().Err(err).Msg("closing fetcher")
		}
	}
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	Title       string
	OutputPath  string
	ReportPath  string
	ContainerID string
	Pages       int
	Speakers    int
	Err         error
	Duration    time.Duration
}

// convertBatch converts jobs with at most concurrency dramas in flight.
// Results are returned in job order.
func convertBatch(ctx context.Context, jobs []job, params *conversionParams, concurrency int) []ConversionResult {
	if len(jobs) == 0 {
		return nil
	}

	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]ConversionResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						Title: jobs[idx].meta.Title,
						Err:   ctx.Err(),
					}
					continue
				}
				results[idx] = convertJob(ctx, jobs[idx], params)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// convertJob fetches, converts and writes one drama.
func convertJob(ctx context.Context, j job, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		Title:       j.meta.Title,
		OutputPath:  j.output,
		ContainerID: j.triggers.ContainerID,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	log := params.log.With().Str("drama", j.meta.Title).Logger()

	fetcher := params.files
	if j.remote {
		fetcher = params.remote
	}
	log.Debug().Int("pages", len(j.sources)).Bool("remote", j.remote).Msg("fetching pages")

	pages, err := fetch.FetchAll(ctx, fetcher, j.sources, params.workers)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrFetchPages, err))
	}
	result.Pages = len(pages)

	conv, err := html2tei.Convert(ctx, j.meta, pages,
		html2tei.WithActTrigger(j.triggers.Act),
		html2tei.WithSceneTrigger(j.triggers.Scene),
		html2tei.WithContainerID(j.triggers.ContainerID),
		html2tei.WithLogger(log),
	)
	if err != nil {
		return fail(err)
	}
	result.Speakers = len(conv.Document.Header.Cast)

	if params.stdout != nil {
		if _, err := params.stdout.Write(conv.XML); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
		}
		result.OutputPath = "-"
	} else if err := fileutil.WriteFileAtomic(j.output, conv.XML, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	if params.report != config.ReportNone {
		path, err := writeReport(ctx, j.output, conv, params.report)
		if err != nil {
			return fail(err)
		}
		result.ReportPath = path
	}

	result.Duration = time.Since(start)
	log.Debug().Dur("duration", result.Duration).Int("speakers", result.Speakers).Msg("converted")
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results and returns the number
// of failures. Failures are printed even when quiet, with a hint.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Title, r.Err, hintFor(r.Err, r.ContainerID))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d pages, %d speakers, %v)\n",
				r.Title, r.OutputPath, r.Pages, r.Speakers, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.ReportPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.ReportPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// batchError reports the failed conversions of a batch.
type batchError struct {
	errs []error
}

func newBatchError(results []ConversionResult) *batchError {
	be := &batchError{}
	for _, r := range results {
		if r.Err != nil {
			be.errs = append(be.errs, r.Err)
		}
	}
	return be
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", len(e.errs))
}

func (e *batchError) Unwrap() []error {
	return e.errs
}
