// Command corpus-cli ingests raw Fijian language data files, cleans and
// validates them, and writes deduplicated training data partitions.
//
// Exit codes: 0 = success, 1 = fatal error (missing input directory or
// unwritable output). Per-file failures never change the exit status; they
// are recorded in metadata.json.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fijiandata/corpus/internal/app"
)

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("corpus-cli: %v", err)
	}
	if err := app.Run(opts); err != nil {
		log.Fatalf("corpus-cli: %v", err)
	}
}

func parseFlags() (app.Options, error) {
	var opts app.Options
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.InputDir, "input", "", "Directory containing raw data files")
	flag.StringVar(&opts.OutputDir, "output", "", "Directory to write processed data")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --input DIR --output DIR [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.ConfigPath = strings.TrimSpace(opts.ConfigPath)
	opts.InputDir = strings.TrimSpace(opts.InputDir)
	opts.OutputDir = strings.TrimSpace(opts.OutputDir)

	if opts.InputDir == "" {
		flag.Usage()
		return opts, errors.New("missing required --input directory")
	}
	if opts.OutputDir == "" {
		flag.Usage()
		return opts, errors.New("missing required --output directory")
	}
	return opts, nil
}
