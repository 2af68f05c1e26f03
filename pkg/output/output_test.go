// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/routemap/pkg/route"
	"gopkg.in/yaml.v3"
)

const testDir = "/var/lib/routemap"

func testRoute(t testing.TB) *route.Route {
	t.Helper()
	r := route.NewAssembler(func() time.Time {
		return time.Date(2024, 5, 17, 13, 37, 5, 0, time.UTC)
	}).Assemble(
		[]route.Address{"203.0.113.5", "10.0.0.1", "192.0.2.44"},
		[]route.Location{
			{Country: "Germany", City: "Köln", Latitude: 50.9375, Longitude: 6.9603, ISP: "NetCologne"},
			route.UnknownLocation(),
			{Country: "United States", City: "Ashburn", Latitude: 39.0438, Longitude: -77.4874, ISP: "Edgecast <CDN>"},
		},
	)
	return &r
}

func TestRouteFileName(t *testing.T) {
	r := testRoute(t)
	assert.Equal(t, "route_data_20240517_133705.json", RouteFileName(r, FormatJSON))
	assert.Equal(t, "route_data_20240517_133705.yaml", RouteFileName(r, FormatYAML))
}

func TestFileWriter_Write(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		decode func([]byte, any) error
	}{
		{name: "json", format: FormatJSON, decode: json.Unmarshal},
		{name: "yaml", format: FormatYAML, decode: yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			r := testRoute(t)
			w := NewFileWriter(fs, Options{Dir: testDir, Format: tt.format})

			path, err := w.Write(t.Context(), r)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(testDir, RouteFileName(r, tt.format)), path)

			b, err := afero.ReadFile(fs, path)
			require.NoError(t, err)

			var got route.Route
			require.NoError(t, tt.decode(b, &got))
			assert.True(t, r.CapturedAt.Equal(got.CapturedAt))
			assert.Equal(t, r.Hops, got.Hops)
		})
	}
}

func TestFileWriter_Write_jsonLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	path, err := NewFileWriter(fs, Options{Dir: testDir, Format: FormatJSON}).Write(t.Context(), testRoute(t))
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	content := string(b)

	assert.Contains(t, content, "\n  \"hops\": [", "output must be indented")
	assert.Contains(t, content, `"hop_number": 1`)
	assert.Contains(t, content, "Köln", "non-ASCII must not be escaped")
	assert.Contains(t, content, "Edgecast <CDN>", "HTML characters must not be escaped")
}

func TestFileWriter_Write_readOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := NewFileWriter(fs, Options{Dir: testDir, Format: FormatJSON}).Write(t.Context(), testRoute(t))
	assert.Error(t, err)
}

func TestMapRenderer_Write(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := testRoute(t)

	path, err := NewMapRenderer(fs, Options{Dir: testDir}).Write(t.Context(), r)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(testDir, MapFileName), path)

	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	page := string(b)

	assert.Contains(t, page, "<title>Network Path Visualization</title>")
	assert.Contains(t, page, "leaflet.js")
	assert.Contains(t, page, `"ip":"203.0.113.5"`)
	assert.Contains(t, page, `"ip":"192.0.2.44"`)
	assert.Contains(t, page, `"located":false`)
	assert.NotContains(t, page, "Edgecast <CDN>", "values must be escaped inside the script")
}

func TestPoints(t *testing.T) {
	points := Points(testRoute(t))
	require.Len(t, points, 3)
	assert.Equal(t, Point{Hop: 1, IP: "203.0.113.5", Lat: 50.9375, Lon: 6.9603, City: "Köln", Country: "Germany", ISP: "NetCologne", Located: true}, points[0])
	assert.Equal(t, Point{Hop: 2, IP: "10.0.0.1", City: route.Unknown, Country: route.Unknown, ISP: route.Unknown}, points[1])
	assert.Equal(t, 3, points[2].Hop)
	assert.True(t, points[2].Located)
}

func TestTable_Write(t *testing.T) {
	var buf bytes.Buffer
	name, err := NewTable(&buf).Write(t.Context(), testRoute(t))
	require.NoError(t, err)
	assert.Empty(t, name)

	out := buf.String()
	for _, s := range []string{"HOP", "ADDRESS", "203.0.113.5", "10.0.0.1", "Ashburn", route.Unknown} {
		assert.Contains(t, out, s)
	}
	assert.Equal(t, 1, strings.Count(out, "NetCologne"))
}

func TestStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := Options{Dir: testDir, Format: FormatJSON}
	s := NewStore(fs, opts)

	names, err := s.Routes()
	require.NoError(t, err)
	assert.Empty(t, names, "missing directory has no routes")

	_, err = s.Map()
	assert.ErrorIs(t, err, ErrNotFound)

	older := testRoute(t)
	newer := testRoute(t)
	newer.CapturedAt = newer.CapturedAt.Add(time.Hour)

	_, err = NewFileWriter(fs, opts).Write(t.Context(), older)
	require.NoError(t, err)
	_, err = NewFileWriter(fs, Options{Dir: testDir, Format: FormatYAML}).Write(t.Context(), newer)
	require.NoError(t, err)
	_, err = NewMapRenderer(fs, opts).Write(t.Context(), newer)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "notes.txt"), []byte("x"), 0o644))

	names, err = s.Routes()
	require.NoError(t, err)
	assert.Equal(t, []string{"route_data_20240517_143705.yaml", "route_data_20240517_133705.json"}, names)

	b, err := s.Route("route_data_20240517_133705.json")
	require.NoError(t, err)
	assert.Contains(t, string(b), "203.0.113.5")

	_, err = s.Route("notes.txt")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Route("../route_data_20240517_133705.json")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Route("route_data_20200101_000000.json")
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := s.Map()
	require.NoError(t, err)
	assert.Contains(t, string(page), "Network Path Visualization")
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "json", opts: Options{Dir: ".", Format: FormatJSON}},
		{name: "yaml with map", opts: Options{Dir: "out", Format: FormatYAML, Map: true}},
		{name: "empty dir", opts: Options{Format: FormatJSON}, wantErr: true},
		{name: "unknown format", opts: Options{Dir: ".", Format: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Options.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
