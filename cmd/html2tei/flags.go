package main

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// dramaFlags holds TEI header metadata flags.
type dramaFlags struct {
	title     string
	author    string
	publisher string
	date      string
}

// sourceFlags holds page source flags.
type sourceFlags struct {
	pages int
}

// markupFlags holds flags describing the source markup.
type markupFlags struct {
	actTrigger   string
	sceneTrigger string
	containerID  string
}

// fetchFlags holds page retrieval flags.
type fetchFlags struct {
	browser   bool
	timeout   time.Duration
	rate      float64
	workers   int
	userAgent string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	output string
	stdout bool
	report string
	jobs   int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	drama  dramaFlags
	source sourceFlags
	markup markupFlags
	fetch  fetchFlags
	output outputFlags

	// changed records flags set explicitly, for values where the zero
	// value is meaningful (--rate 0, --browser=false).
	changed map[string]bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show parser decisions and timing")
}

func addDramaFlags(fs *flag.FlagSet, f *dramaFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "drama title")
	fs.StringVarP(&f.author, "author", "a", "", "author as \"Last, First\"")
	fs.StringVar(&f.publisher, "publisher", "", "publisher for the TEI header")
	fs.StringVar(&f.date, "date", "", "conversion date (\"auto\" = today)")
}

func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.IntVarP(&f.pages, "pages", "n", 0, "number of pages from the start URL")
}

func addMarkupFlags(fs *flag.FlagSet, f *markupFlags) {
	fs.StringVar(&f.actTrigger, "act-trigger", "", "heading substring opening an act (default \"Akt\")")
	fs.StringVar(&f.sceneTrigger, "scene-trigger", "", "heading substring opening a scene (default \"Szene\")")
	fs.StringVar(&f.containerID, "container-id", "", "id of the element holding the text (default \"gutenb\")")
}

func addFetchFlags(fs *flag.FlagSet, f *fetchFlags) {
	fs.BoolVar(&f.browser, "browser", false, "render pages in headless Chrome")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-page fetch timeout (default 30s)")
	fs.Float64Var(&f.rate, "rate", 0, "requests per second, 0 = unlimited (default 2)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page fetches (default 4)")
	fs.StringVar(&f.userAgent, "user-agent", "", "User-Agent header")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory, or .xml file for a single drama")
	fs.BoolVar(&f.stdout, "stdout", false, "write the XML to stdout")
	fs.StringVar(&f.report, "report", "", "also write a summary report: md or html")
	fs.IntVarP(&f.jobs, "jobs", "j", 0, "dramas converted in parallel (0 = auto)")
}

// parseConvertFlags parses convert flags and returns the positional
// arguments. Help is printed to w; errors are returned for the caller
// to report.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printConvertUsage(w) }

	f := &convertFlags{changed: make(map[string]bool)}
	addCommonFlags(fs, &f.common)
	addDramaFlags(fs, &f.drama)
	addSourceFlags(fs, &f.source)
	addMarkupFlags(fs, &f.markup)
	addFetchFlags(fs, &f.fetch)
	addOutputFlags(fs, &f.output)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}

// outputFile returns the --output value when it names an XML file.
func (f *convertFlags) outputFile() string {
	if strings.EqualFold(filepath.Ext(f.output.output), ".xml") {
		return f.output.output
	}
	return ""
}
