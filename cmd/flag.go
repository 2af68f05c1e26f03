// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configKeyAnnotation holds the config key a flag is bound to
const configKeyAnnotation = "routemap_config_key"

// Flag is a cli flag backing a config key
type Flag struct {
	config string
	cli    string
}

type (
	StringFlag   struct{ *Flag }
	IntFlag      struct{ *Flag }
	BoolFlag     struct{ *Flag }
	DurationFlag struct{ *Flag }
)

// NewFlag returns a flag named cli overriding the config key
func NewFlag(config, cli string) *Flag {
	return &Flag{config: config, cli: cli}
}

func (f *Flag) String() *StringFlag { return &StringFlag{f} }
func (f *Flag) Int() *IntFlag { return &IntFlag{f} }
func (f *Flag) Bool() *BoolFlag { return &BoolFlag{f} }
func (f *Flag) Duration() *DurationFlag { return &DurationFlag{f} }

// Bind registers the flag on the command
func (f *StringFlag) Bind(cmd *cobra.Command, value, usage string) {
	cmd.Flags().String(f.cli, value, usage)
	f.annotate(cmd)
}

// Bind registers the flag on the command
func (f *IntFlag) Bind(cmd *cobra.Command, value int, usage string) {
	cmd.Flags().Int(f.cli, value, usage)
	f.annotate(cmd)
}

// Bind registers the flag on the command
func (f *BoolFlag) Bind(cmd *cobra.Command, value bool, usage string) {
	cmd.Flags().Bool(f.cli, value, usage)
	f.annotate(cmd)
}

// Bind registers the flag on the command
func (f *DurationFlag) Bind(cmd *cobra.Command, value time.Duration, usage string) {
	cmd.Flags().Duration(f.cli, value, usage)
	f.annotate(cmd)
}

func (f *Flag) annotate(cmd *cobra.Command) {
	cobra.CheckErr(cmd.Flags().SetAnnotation(f.cli, configKeyAnnotation, []string{f.config}))
}

// bindFlags binds the annotated flags of the command to their config keys.
// It runs before the command so only the flags of the executed command are bound.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys, ok := f.Annotations[configKeyAnnotation]
		if !ok || len(keys) == 0 || err != nil {
			return
		}
		if bErr := viper.BindPFlag(keys[0], f); bErr != nil {
			err = fmt.Errorf("failed to bind flag %q: %w", f.Name, bErr)
		}
	})
	return err
}
