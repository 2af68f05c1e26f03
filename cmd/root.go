// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// envPrefix prefixes the environment variables overriding config keys,
	// e.g. ROUTEMAP_OUTPUT_DIR for output.dir
	envPrefix = "routemap"
	// configName is the name of the config file looked up in the home directory
	configName = ".routemap"
)

// NewCmdRoot creates the routemap command without subcommands
func NewCmdRoot(version string) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "routemap",
		Short: "routemap, the network route mapper",
		Long: "routemap traces the network route towards a target, locates every hop\n" +
			"and saves the route together with a map of the path.\n\n" +
			"Every flag can also be set in the config file or as ROUTEMAP_ environment variable.",
		Version:      version,
		SilenceUsage: true,
	}

	cobra.OnInitialize(func() {
		initConfig(cfgFile)
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		fmt.Sprintf("config file (default is $HOME/%s.yaml)", configName))

	return rootCmd
}

// Execute runs routemap and exits non-zero on failure
func Execute(version string) {
	if err := BuildCmd(version).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// BuildCmd returns the routemap command with the trace and serve subcommands
func BuildCmd(version string) *cobra.Command {
	cmd := NewCmdRoot(version)
	cmd.AddCommand(NewCmdTrace(version), NewCmdServe(version))
	return cmd
}

// initConfig points viper to the config file and the environment.
// A missing config file is not an error.
func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}

	viper.SetOptions(viper.ExperimentalBindStruct())
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		_, _ = fmt.Fprintln(os.Stderr, "Reading routemap config from", viper.ConfigFileUsed())
	}
}
