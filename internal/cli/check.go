package cli

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/alvinbaena/pwd-strength/internal/evaluator"
	"github.com/alvinbaena/pwd-strength/internal/remote"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PASSWORD]",
		Short: "Check a password once against the criteria and the evaluation service",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return checkCommand(cmd.Context(), "")
			} else {
				return checkCommand(cmd.Context(), args[0])
			}
		},
	}
)

func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The password is read from a masked prompt.")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(ctx context.Context, password string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := remote.NewClient(cfg.Endpoint, cfg.RetryMax)
	check := func(password string) {
		reqCtx, cancel := requestContext(ctx, cfg.RequestTimeout)
		defer cancel()
		checkPassword(reqCtx, client, password).print(os.Stdout)
	}

	if !interactive {
		if strings.TrimSpace(password) == "" {
			return errors.New("please enter a password")
		}
		check(password)
		return nil
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("please enter a password")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. ^C to exit")
	for {
		result, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}

		check(result)
	}
}

func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// checkPassword renders the criteria and, when the service answers, its verdict.
func checkPassword(ctx context.Context, client evaluator.Client, password string) *consoleSink {
	sink := newConsoleSink()
	evaluator.RenderCriteria(sink, password)

	verdict, err := client.Evaluate(ctx, password)
	if err != nil {
		log.Error().Err(err).Msg("there was a problem evaluating the password")
		return sink
	}

	evaluator.RenderVerdict(sink, verdict)
	return sink
}
