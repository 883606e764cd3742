package main

import (
	"fmt"
	"io"

	"github.com/ccollins476ad/modelfetch/download"
	log "github.com/sirupsen/logrus"
)

// provision ensures each named artifact is present in the store's directory,
// in order. Missing artifacts are "downloaded"; present ones are skipped. A
// progress line is written to w for each step. The first failure aborts the
// run.
func provision(s *download.Store, names []string, w io.Writer) error {
	err := s.EnsureDir()
	if err != nil {
		return err
	}

	for _, name := range names {
		desc, err := s.Evaluate(name)
		if err != nil {
			return err
		}

		if desc.IsLocal {
			fmt.Fprintf(w, "✓ %s already exists\n", name)
			continue
		}

		fmt.Fprintf(w, "Downloading %s...\n", name)
		_, err = s.Fetch(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "✓ Downloaded %s\n", name)
	}

	log.Debugf("provisioned %d artifacts into %s", len(names), s.DestDir())
	return nil
}
