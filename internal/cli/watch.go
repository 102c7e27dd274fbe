package cli

import (
	"os"
	"path/filepath"

	"github.com/alvinbaena/pwd-strength/internal/evaluator"
	"github.com/alvinbaena/pwd-strength/internal/remote"
	"github.com/alvinbaena/pwd-strength/internal/tui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Check a password as you type it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchCommand()
		},
	}
)

func init() {
	watchCmd.Flags().StringVar(&logFile, "log-file", filepath.Join(os.TempDir(), "pwdstrength.log"),
		"File receiving the log while the screen is in use")
	watchCmd.Flags().Duration("debounce", evaluator.DefaultDebounce, "Pause in typing before the password is sent for evaluation")

	_ = viper.BindPFlag("DEBOUNCE", watchCmd.Flags().Lookup("debounce"))

	rootCmd.AddCommand(watchCmd)
}

func watchCommand() error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing log file")
		}
	}(file)

	// the terminal belongs to the program from here on
	previous := log.Logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: file, NoColor: true})
	defer func() { log.Logger = previous }()

	client := remote.NewClient(cfg.Endpoint, cfg.RetryMax)
	return tui.Run(client, evaluator.Options{
		Debounce: cfg.Debounce,
		Timeout:  cfg.RequestTimeout,
	})
}
