package download

import (
	"fmt"
	"time"
)

// SimulatedDelay stands in for the transfer time of a single artifact.
const SimulatedDelay = time.Second

// DefaultDir is the directory artifacts are provisioned into, relative to the
// working directory.
const DefaultDir = "models"

var artifacts = []string{
	"model1.pkl",
	"model2.pkl",
	"weights.bin",
}

// Artifacts returns the names of the artifacts to provision, in order.
func Artifacts() []string {
	return append([]string(nil), artifacts...)
}

// Placeholder returns the contents written in place of a downloaded artifact.
func Placeholder(name string) []byte {
	return []byte(fmt.Sprintf("# Dummy %s file\n", name))
}
