package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-html2tei/internal/yamlutil"
)

// configFlags holds flags for the config command.
type configFlags struct {
	config string
}

func parseConfigFlags(args []string, w io.Writer) (*configFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printConfigUsage(w) }

	f := &configFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// runConfig prints the effective configuration as YAML.
func runConfig(flags *configFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.config, loadEnvConfig())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
