package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-html2tei/internal/dateutil"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2tei <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert HTML drama pages to TEI XML")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2tei help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2tei convert [<start-url> | <url>... | <file>...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the pages of a drama to one TEI document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  start-url    URL of page 1, ending with the page number (use --pages)")
	fmt.Fprintln(w, "  url...       Page URLs in reading order")
	fmt.Fprintln(w, "  file...      Local HTML pages in reading order")
	fmt.Fprintln(w, "               Optional if the config has a source or jobs section")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Drama:")
	fmt.Fprintln(w, "  -t, --title <s>           Drama title (required)")
	fmt.Fprintln(w, "  -a, --author <s>          Author as \"Last, First\" (required)")
	fmt.Fprintln(w, "      --publisher <s>       Publisher for the TEI header")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets: "+strings.Join(dateutil.Presets(), ", "))
	fmt.Fprintln(w, "  -n, --pages <n>           Pages to fetch from the start URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markup:")
	fmt.Fprintln(w, "      --act-trigger <s>     Heading substring opening an act (default: Akt)")
	fmt.Fprintln(w, "      --scene-trigger <s>   Heading substring opening a scene (default: Szene)")
	fmt.Fprintln(w, "      --container-id <s>    Element id holding the text (default: gutenb)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetching:")
	fmt.Fprintln(w, "      --browser             Render pages in headless Chrome")
	fmt.Fprintln(w, "      --timeout <d>         Per-page timeout (default: 30s)")
	fmt.Fprintln(w, "      --rate <f>            Requests per second, 0 = unlimited (default: 2)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel page fetches (default: 4)")
	fmt.Fprintln(w, "      --user-agent <s>      User-Agent header")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or .xml file for one drama")
	fmt.Fprintln(w, "      --stdout              Write the XML to stdout")
	fmt.Fprintln(w, "      --report <s>          Also write a summary: md, html")
	fmt.Fprintln(w, "  -j, --jobs <n>            Dramas converted in parallel (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show parser decisions and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTML2TEI_CONFIG, HTML2TEI_OUTPUT_DIR, HTML2TEI_TIMEOUT, HTML2TEI_RATE,")
	fmt.Fprintln(w, "  HTML2TEI_WORKERS, HTML2TEI_BROWSER, HTML2TEI_USER_AGENT, HTML2TEI_ACT_TRIGGER,")
	fmt.Fprintln(w, "  HTML2TEI_SCENE_TRIGGER, HTML2TEI_CONTAINER_ID, HTML2TEI_PUBLISHER, HTML2TEI_REPORT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  html2tei convert https://example.org/weber/1 -n 12 -t \"Die Weber\" -a \"Hauptmann, Gerhart\"")
	fmt.Fprintln(w, "  html2tei convert page1.html page2.html -t Woyzeck -a \"Büchner, Georg\" -o woyzeck.xml")
	fmt.Fprintln(w, "  html2tei convert -c dramas --report html")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2tei config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration convert would use, after applying the")
	fmt.Fprintln(w, "config file and HTML2TEI_* environment variables to the defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: html2tei version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: html2tei help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
