// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when a requested artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

// Store gives read access to the artifacts in the output directory.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore returns a [Store] reading the configured output directory of the filesystem.
func NewStore(fsys afero.Fs, opts Options) *Store {
	return &Store{fs: fsys, dir: opts.Dir}
}

// Routes returns the names of all persisted route files, newest first.
func (s *Store) Routes() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !isRouteFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	// the timestamp layout sorts lexically
	slices.Sort(names)
	slices.Reverse(names)
	return names, nil
}

// Route returns the content of the named route file.
func (s *Store) Route(name string) ([]byte, error) {
	if !isRouteFile(name) || filepath.Base(name) != name {
		return nil, ErrNotFound
	}
	return s.read(name)
}

// Map returns the content of the rendered map.
func (s *Store) Map() ([]byte, error) {
	return s.read(MapFileName)
}

func (s *Store) read(name string) ([]byte, error) {
	b, err := afero.ReadFile(s.fs, filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return b, nil
}

func isRouteFile(name string) bool {
	if !strings.HasPrefix(name, routeFilePrefix) {
		return false
	}
	ext := Format(strings.TrimPrefix(filepath.Ext(name), "."))
	return ext.IsValid()
}
