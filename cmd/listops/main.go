// Command listops runs a YAML script of list operations and prints the
// resulting lists.
//
//	listops -script ops.yaml -format tree
//	listops -strict < ops.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-listadt/internal/script"
)

func main() {
	cfg := script.DefaultConfig()
	var path = flag.String("script", "", "Script file to run (default: stdin)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "Output format (text, json, yaml, tree)")
	flag.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Stop at the first out-of-range step")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(cfg, *path, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "listops: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg script.Config, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	log := zerolog.New(stderr).Level(lvl).With().Timestamp().Logger()

	in := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	s, err := script.Parse(in)
	if err != nil {
		return err
	}
	res, err := script.NewRunner(cfg, log).Run(s)
	if err != nil {
		return err
	}
	return script.Write(stdout, res, cfg.Format)
}
