package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// run dispatches a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "convert":
		flags, positional, err := parseConvertFlags(rest, env.Stderr)
		if err != nil {
			return parseExitCode(env, err)
		}
		return exitWith(env, runConvert(ctx, positional, flags, env))

	case "config":
		flags, err := parseConfigFlags(rest, env.Stderr)
		if err != nil {
			return parseExitCode(env, err)
		}
		return exitWith(env, runConfig(flags, env))

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "html2tei %s\n", Version)
		return ExitSuccess

	case "help", "-h", "--help":
		return runHelp(rest, env)

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// parseExitCode reports a flag parsing error. Help requests succeed, the
// usage having already been printed.
func parseExitCode(env *Environment, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return ExitUsage
}

// exitWith prints err with its hint and returns the matching exit code.
func exitWith(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, ""))
	return exitCodeFor(err)
}
