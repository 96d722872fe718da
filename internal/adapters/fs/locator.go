// Package fs provides file system adapters for locating the project root.
package fs

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.RootLocator by walking up from a start directory
// until it finds a package manifest.
type Locator struct {
	start string
}

// NewLocator creates a Locator that starts from the process working directory.
func NewLocator() *Locator {
	return &Locator{}
}

// NewLocatorAt creates a Locator that starts from dir.
func NewLocatorAt(dir string) *Locator {
	return &Locator{start: dir}
}

// FindRoot returns the nearest directory at or above the start directory that
// contains package.json.
func (l *Locator) FindRoot() (string, error) {
	start, err := l.startDir()
	if err != nil {
		return "", err
	}

	currentDir := start
	for {
		manifest := filepath.Join(currentDir, domain.ManifestFileName)
		if info, statErr := os.Stat(manifest); statErr == nil && info.Mode().IsRegular() {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrProjectRootNotFound, "start", start)
}

// ProjectName returns the "name" field of the manifest under root.
func (l *Locator) ProjectName(root string) (string, error) {
	manifest := filepath.Join(root, domain.ManifestFileName)

	// #nosec G304 -- manifest path is derived from the discovered root
	data, err := os.ReadFile(manifest)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", manifest)
	}
	if !gjson.ValidBytes(data) {
		return "", zerr.With(domain.ErrManifestReadFailed, "path", manifest)
	}

	return gjson.GetBytes(data, "name").String(), nil
}

func (l *Locator) startDir() (string, error) {
	if l.start != "" {
		return filepath.Abs(l.start)
	}
	return os.Getwd()
}
