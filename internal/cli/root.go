// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/alvinbaena/pwd-strength/internal/config"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdstrength [COMMAND] [OPTIONS]",
		Short: "Check how strong a password is",
		Long: "Check passwords against local criteria and a remote strength service, generate random passwords " +
			"and serve the strength evaluation API. Settings are read from PWDSTRENGTH_* environment variables " +
			"or a .env file, flags take precedence",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
	rootCmd.PersistentFlags().StringP("endpoint", "e", "", "URL of the password evaluation service")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout of each evaluation request, 0 disables it")

	_ = viper.BindPFlag("ENDPOINT", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("REQUEST_TIMEOUT", rootCmd.PersistentFlags().Lookup("timeout"))
}

// setup applies the global flags and loads the configuration.
func setup() (config.Config, error) {
	util.ApplyCliSettings(verbose, profile, pprofPort)
	return config.Load()
}

func Execute() error {
	return rootCmd.Execute()
}
