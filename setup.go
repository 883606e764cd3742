package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccollins476ad/modelfetch/download"
)

type Config struct {
	DestDir string // Directory to provision model artifacts into.
	Verbose bool   // True for verbose output.
}

func parseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	verbose := fs.Bool("v", false, "verbose output")
	destDir := fs.String("d", download.DefaultDir, "models directory")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if *destDir == "" {
		return nil, fmt.Errorf("models directory must not be empty")
	}

	return &Config{
		DestDir: *destDir,
		Verbose: *verbose,
	}, nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [option]...\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(flag.CommandLine.Output(), "Provisions placeholder model files into a local directory.\n")
	flag.PrintDefaults()
}
