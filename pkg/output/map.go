// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/route"
)

var _ Sink = (*MapRenderer)(nil)

//go:embed templates/map.html.tmpl
var templates embed.FS

var mapTemplate = template.Must(template.ParseFS(templates, "templates/map.html.tmpl"))

// Point is a single marker of the map visualization.
type Point struct {
	Hop     int     `json:"hop"`
	IP      string  `json:"ip"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	ISP     string  `json:"isp"`
	// Located is false for points the map cannot place.
	Located bool `json:"located"`
}

// Points converts the hops of the route into map points, keeping the hop order.
// Hops without coordinates are included but not located.
func Points(r *route.Route) []Point {
	points := make([]Point, 0, len(r.Hops))
	for _, h := range r.Hops {
		points = append(points, Point{
			Hop:     h.Number,
			IP:      h.Address.String(),
			Lat:     h.Location.Latitude,
			Lon:     h.Location.Longitude,
			City:    h.Location.City,
			Country: h.Location.Country,
			ISP:     h.Location.ISP,
			Located: h.Location.HasCoordinates(),
		})
	}
	return points
}

// MapRenderer writes an HTML page showing the route on a world map.
type MapRenderer struct {
	fs  afero.Fs
	dir string
}

// NewMapRenderer returns a [MapRenderer] writing into the configured directory of the filesystem.
func NewMapRenderer(fs afero.Fs, opts Options) *MapRenderer {
	return &MapRenderer{fs: fs, dir: opts.Dir}
}

// Write renders the map and returns the path of the written page.
// An existing map is replaced.
func (m *MapRenderer) Write(ctx context.Context, r *route.Route) (string, error) {
	path := filepath.Join(m.dir, MapFileName)
	log := logger.FromContext(ctx).With("path", path)

	var buf bytes.Buffer
	err := mapTemplate.Execute(&buf, struct {
		Title      string
		Points     []Point
		CapturedAt string
	}{
		Title:      "Network Path Visualization",
		Points:     Points(r),
		CapturedAt: r.CapturedAt.Format(time.RFC1123),
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to render map", "error", err)
		return "", fmt.Errorf("failed to render map: %w", err)
	}

	if err := m.fs.MkdirAll(m.dir, 0o755); err != nil {
		log.ErrorContext(ctx, "Failed to create output directory", "error", err)
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := afero.WriteFile(m.fs, path, buf.Bytes(), 0o644); err != nil {
		log.ErrorContext(ctx, "Failed to write map", "error", err)
		return "", fmt.Errorf("failed to write map: %w", err)
	}

	log.InfoContext(ctx, "Map visualization saved", "points", len(r.Hops))
	return path, nil
}
