package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ccollins476ad/modelfetch/download"
	log "github.com/sirupsen/logrus"
)

func printFatalError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func main() {
	flag.Usage = usage
	cfg, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		printFatalError(err)
		flag.Usage()
		os.Exit(1)
	}

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	s := download.NewStore(cfg.DestDir, download.SimulatedDelay)

	err = provision(s, download.Artifacts(), os.Stdout)
	if err != nil {
		printFatalError(err)
		os.Exit(2)
	}
}
