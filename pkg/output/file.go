// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/route"
	"gopkg.in/yaml.v3"
)

var _ Sink = (*FileWriter)(nil)

// FileWriter persists routes as timestamped JSON or YAML files.
type FileWriter struct {
	fs     afero.Fs
	dir    string
	format Format
}

// NewFileWriter returns a [FileWriter] writing into the configured directory of the filesystem.
func NewFileWriter(fs afero.Fs, opts Options) *FileWriter {
	return &FileWriter{
		fs:     fs,
		dir:    opts.Dir,
		format: opts.Format,
	}
}

// RouteFileName returns the file name of a route captured at the route's capture time.
func RouteFileName(r *route.Route, format Format) string {
	return fmt.Sprintf("%s%s.%s", routeFilePrefix, r.CapturedAt.Format(routeFileTimeLayout), format)
}

// Write persists the route and returns the path of the written file.
func (w *FileWriter) Write(ctx context.Context, r *route.Route) (path string, err error) {
	path = filepath.Join(w.dir, RouteFileName(r, w.format))
	log := logger.FromContext(ctx).With("path", path)

	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		log.ErrorContext(ctx, "Failed to create output directory", "error", err)
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := w.fs.Create(path)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create route file", "error", err)
		return "", fmt.Errorf("failed to create route file: %w", err)
	}
	defer func() {
		cerr := f.Close()
		if cerr != nil {
			log.ErrorContext(ctx, "Failed to close route file", "error", cerr)
		}
		err = errors.Join(err, cerr)
	}()

	if err := encode(f, r, w.format); err != nil {
		log.ErrorContext(ctx, "Failed to write route file", "error", err)
		return "", fmt.Errorf("failed to write route file: %w", err)
	}

	log.InfoContext(ctx, "Route data saved", "hops", len(r.Hops))
	return path, nil
}

// encode serializes the route in the given format.
// Non-ASCII characters in city and operator names are written as is.
func encode(w io.Writer, r *route.Route, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
