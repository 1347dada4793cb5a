package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alnah/go-html2tei"
	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/dateutil"
	"github.com/alnah/go-html2tei/internal/fetch"
	"github.com/alnah/go-html2tei/internal/fileutil"
)

// Sentinel errors for the convert command.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrMixedInput     = errors.New("cannot mix URLs and local files")
	ErrPagesConflict  = errors.New("--pages requires a single start URL")
	ErrOutputConflict = errors.New("conflicting output options")
	ErrFetchPages     = errors.New("fetching pages failed")
	ErrWriteOutput    = errors.New("failed to write TEI file")
	ErrWriteReport    = errors.New("failed to write report")
)

// job is one drama to convert.
type job struct {
	meta     html2tei.Metadata
	sources  []string // URLs or local paths, in reading order
	remote   bool
	triggers config.TriggerConfig
	output   string
}

// runConvert resolves configuration, builds the jobs and converts them.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	log := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	setMaxProcs(log)
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobs, err := buildJobs(positional, flags.source.pages, cfg, env.Now())
	if err != nil {
		return err
	}
	if err := assignOutputs(jobs, flags, cfg); err != nil {
		return err
	}

	params, err := newConversionParams(jobs, flags, cfg, env, log)
	if err != nil {
		return err
	}
	defer params.close()

	results := convertBatch(ctx, jobs, params, resolvePoolSize(flags.output.jobs))

	// With --stdout the XML owns stdout, so only failures are printed.
	quiet := flags.common.quiet || flags.output.stdout
	if failed := printResultsWithWriter(results, quiet, flags.common.verbose, env); failed > 0 {
		return newBatchError(results)
	}
	return nil
}

// loadConfig returns the defaults, overlaid by the config file named by
// the flag or HTML2TEI_CONFIG, then by the environment.
func loadConfig(flagName string, env *envConfig) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags on top of cfg.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	d := flags.drama
	if d.title != "" {
		cfg.Drama.Title = d.title
	}
	if d.author != "" {
		cfg.Drama.Author = d.author
	}
	if d.publisher != "" {
		cfg.Drama.Publisher = d.publisher
	}
	if d.date != "" {
		cfg.Drama.Date = d.date
	}

	m := flags.markup
	if m.actTrigger != "" {
		cfg.Triggers.Act = m.actTrigger
	}
	if m.sceneTrigger != "" {
		cfg.Triggers.Scene = m.sceneTrigger
	}
	if m.containerID != "" {
		cfg.Triggers.ContainerID = m.containerID
	}

	f := flags.fetch
	if flags.changed["browser"] {
		cfg.Fetch.Browser = f.browser
	}
	if f.timeout > 0 {
		cfg.Fetch.Timeout = f.timeout.String()
	}
	if flags.changed["rate"] {
		cfg.Fetch.Rate = f.rate
	}
	if f.workers > 0 {
		cfg.Fetch.Workers = f.workers
	}
	if f.userAgent != "" {
		cfg.Fetch.UserAgent = f.userAgent
	}

	o := flags.output
	if o.output != "" && flags.outputFile() == "" {
		cfg.Output.DefaultDir = o.output
	}
	if o.report != "" {
		cfg.Output.Report = o.report
	}
}

// buildJobs returns the dramas to convert. Positional arguments take
// precedence over the config source section, which takes precedence over
// config jobs. pages comes from --pages (0 = not set).
func buildJobs(positional []string, pages int, cfg *config.Config, now time.Time) ([]job, error) {
	date, err := dateutil.ResolveDate(cfg.Drama.Date, now)
	if err != nil {
		return nil, fmt.Errorf("drama.date: %w", err)
	}
	drama := cfg.Drama
	drama.Date = date

	switch {
	case len(positional) > 0:
		sources, remote, err := sourcesFromArgs(positional, pages)
		if err != nil {
			return nil, err
		}
		j, err := newJob(drama, sources, remote, cfg.Triggers)
		if err != nil {
			return nil, err
		}
		return []job{j}, nil

	case cfg.Source.StartURL != "" || len(cfg.Source.Files) > 0:
		if pages == 0 {
			pages = cfg.Source.Pages
		}
		sources, remote, err := resolveSources(cfg.Source.StartURL, pages, cfg.Source.Files)
		if err != nil {
			return nil, err
		}
		j, err := newJob(drama, sources, remote, cfg.Triggers)
		if err != nil {
			return nil, err
		}
		return []job{j}, nil

	case len(cfg.Jobs) > 0:
		if pages > 0 {
			return nil, ErrPagesConflict
		}
		jobs := make([]job, 0, len(cfg.Jobs))
		for i, jc := range cfg.Jobs {
			sources, remote, err := resolveSources(jc.StartURL, jc.Pages, jc.Files)
			if err != nil {
				return nil, fmt.Errorf("jobs[%d]: %w", i, err)
			}
			d := drama
			d.Title, d.Author = jc.Title, jc.Author
			j, err := newJob(d, sources, remote, jc.Triggers.Merge(cfg.Triggers))
			if err != nil {
				return nil, fmt.Errorf("jobs[%d]: %w", i, err)
			}
			jobs = append(jobs, j)
		}
		return jobs, nil

	default:
		return nil, ErrNoInput
	}
}

func newJob(d config.DramaConfig, sources []string, remote bool, triggers config.TriggerConfig) (job, error) {
	meta := html2tei.Metadata{
		Title:     d.Title,
		Author:    d.Author,
		Publisher: d.Publisher,
		Date:      d.Date,
	}
	if remote {
		meta.Sources = sources
	}
	if err := meta.Validate(); err != nil {
		return job{}, fmt.Errorf("%w (use --title and --author)", err)
	}
	return job{meta: meta, sources: sources, remote: remote, triggers: triggers}, nil
}

// sourcesFromArgs interprets positional arguments: a start URL (expanded
// with pages), a list of page URLs, or a list of local files.
func sourcesFromArgs(args []string, pages int) ([]string, bool, error) {
	remote := fileutil.IsURL(args[0])
	for _, a := range args[1:] {
		if fileutil.IsURL(a) != remote {
			return nil, false, ErrMixedInput
		}
	}

	if remote && len(args) == 1 {
		return resolveSources(args[0], pages, nil)
	}
	if pages > 1 {
		return nil, false, ErrPagesConflict
	}
	return args, remote, nil
}

// resolveSources expands a start URL into page URLs, or returns files.
// A single page needs no trailing page number.
func resolveSources(startURL string, pages int, files []string) ([]string, bool, error) {
	if startURL == "" {
		return files, false, nil
	}
	if pages <= 1 {
		return []string{startURL}, true, nil
	}
	urls, err := fetch.PageURLs(startURL, pages)
	if err != nil {
		return nil, false, err
	}
	return urls, true, nil
}

// assignOutputs sets each job's output path: the --output file, or
// <dir>/<author>_<title>.xml. Two jobs may not share a path.
func assignOutputs(jobs []job, flags *convertFlags, cfg *config.Config) error {
	file := flags.outputFile()
	if len(jobs) > 1 && file != "" {
		return fmt.Errorf("%w: --output %s needs a single drama", ErrOutputConflict, file)
	}
	if len(jobs) > 1 && flags.output.stdout {
		return fmt.Errorf("%w: --stdout needs a single drama", ErrOutputConflict)
	}
	if flags.output.stdout && cfg.Output.Report != config.ReportNone {
		return fmt.Errorf("%w: --report needs an output file, not --stdout", ErrOutputConflict)
	}

	seen := make(map[string]string, len(jobs))
	for i := range jobs {
		path := file
		if path == "" {
			path = filepath.Join(cfg.Output.DefaultDir, html2tei.OutputFilename(jobs[i].meta.Author, jobs[i].meta.Title))
		}
		if other, ok := seen[path]; ok {
			return fmt.Errorf("%w: %q and %q both write %s", ErrOutputConflict, other, jobs[i].meta.Title, path)
		}
		seen[path] = jobs[i].meta.Title
		jobs[i].output = path
	}
	return nil
}
