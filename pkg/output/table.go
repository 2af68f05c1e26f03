// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/telekom/routemap/pkg/route"
)

var _ Sink = (*Table)(nil)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	unknownStyle = cellStyle.Foreground(lipgloss.Color("241"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// Table prints the route as a table to a terminal.
type Table struct {
	w io.Writer
}

// NewTable returns a [Table] printing to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// Write prints the route. The returned artifact name is always empty.
func (t *Table) Write(_ context.Context, r *route.Route) (string, error) {
	_, err := fmt.Fprintln(t.w, Render(r))
	return "", err
}

// Render returns the hops of the route as a bordered table.
func Render(r *route.Route) string {
	rows := make([][]string, 0, len(r.Hops))
	for _, h := range r.Hops {
		rows = append(rows, []string{
			strconv.Itoa(h.Number),
			h.Address.String(),
			h.Location.City,
			h.Location.Country,
			h.Location.ISP,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("HOP", "ADDRESS", "CITY", "COUNTRY", "ISP").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(r.Hops) && r.Hops[row].Location.IsUnknown():
				return unknownStyle
			default:
				return cellStyle
			}
		}).
		String()
}
