package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ccollins476ad/modelfetch/fileutil"
	"github.com/flytam/filenamify"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidName = errors.New("artifact name is not a plain filename")

// Store provisions model artifacts into a destination directory.
type Store struct {
	destDir string        // constant
	delay   time.Duration // Simulated transfer time per artifact.

	sleep func(time.Duration)
}

// Desc describes an artifact file.
type Desc struct {
	Filename string // Relative to destination directory
	IsLocal  bool   // True if file already present
}

func NewStore(destDir string, delay time.Duration) *Store {
	return &Store{
		destDir: destDir,
		delay:   delay,
		sleep:   time.Sleep,
	}
}

// SetSleepFunc replaces the function the store uses to wait out the
// simulated transfer time.
func (s *Store) SetSleepFunc(fn func(time.Duration)) {
	s.sleep = fn
}

// DestDir returns the store's destination directory.
func (s *Store) DestDir() string {
	return s.destDir
}

// EnsureDir creates the destination directory if it does not already exist.
// Existing contents are left alone. It fails if the path is occupied by
// something other than a directory.
func (s *Store) EnsureDir() error {
	log.Debugf("ensuring directory: %s", s.destDir)

	err := fileutil.EnsureDir(s.destDir)
	if err != nil {
		return fmt.Errorf("failed to create models directory: %w", err)
	}

	return nil
}

// Evaluate returns a descriptor for the named artifact. It does not download
// anything. The `IsLocal` field in the descriptor is true if a file system
// entry already exists at the artifact's path.
func (s *Store) Evaluate(name string) (*Desc, error) {
	filename, err := NameToFilename(name)
	if err != nil {
		log.WithError(err).Errorf("failed to convert artifact name to filename: name=%s", name)
		return nil, err
	}

	destPath := s.path(filename)
	if fileutil.FileExists(destPath) {
		log.Debugf("skipping %s: file already exists: %s", name, destPath)
		return &Desc{
			Filename: filename,
			IsLocal:  true,
		}, nil
	}

	return &Desc{
		Filename: filename,
		IsLocal:  false,
	}, nil
}

// SaveFile writes b to the given path, relative to the destination directory.
func (s *Store) SaveFile(relPath string, b []byte) error {
	destPath := s.path(relPath)
	log.Debugf("writing %s", destPath)
	return os.WriteFile(destPath, b, 0644)
}

// Fetch ensures the named artifact is present. If it is missing, Fetch waits
// out the simulated transfer time and writes a placeholder in its place.
func (s *Store) Fetch(name string) (*Desc, error) {
	desc, err := s.Evaluate(name)
	if err != nil {
		return nil, err
	}

	if desc.IsLocal {
		// Already provisioned.
		return desc, nil
	}

	s.sleep(s.delay)

	err = s.SaveFile(desc.Filename, Placeholder(name))
	if err != nil {
		return nil, fmt.Errorf("failed to save placeholder for %s: %w", name, err)
	}

	return desc, nil
}

func (s *Store) path(relPath string) string {
	return filepath.Join(s.destDir, relPath)
}

// NameToFilename returns the local filename for the named artifact. Names
// must already be valid filenames; anything that filenamify would rewrite
// (path separators, reserved characters) is rejected.
func NameToFilename(name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	body, err := filenamify.Filenamify(name, filenamify.Options{})
	if err != nil {
		return "", err
	}
	if body != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return body, nil
}
