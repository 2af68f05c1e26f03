// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// gen-docs writes the markdown reference of the routemap commands and their flags.
package main

//go:generate go run gen-docs.go --path ../../docs

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	routemapcmd "github.com/telekom/routemap/cmd"
)

func main() {
	if err := newCmdGenDocs().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCmdGenDocs creates the command writing one markdown file per routemap command
func newCmdGenDocs() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "gen-docs",
		Short: "Generate the markdown reference of the routemap commands",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return writeDocs(dir)
		},
	}
	cmd.Flags().StringVar(&dir, "path", "docs", "directory the markdown files are written to")

	return cmd
}

// writeDocs renders the trace and serve commands including their config flags
func writeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create docs directory: %w", err)
	}
	root := routemapcmd.BuildCmd("")
	root.DisableAutoGenTag = true
	if err := doc.GenMarkdownTree(root, dir); err != nil {
		return fmt.Errorf("failed to generate docs for %s: %w", root.Name(), err)
	}
	return nil
}
