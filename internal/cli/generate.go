package cli

import (
	"errors"
	"fmt"

	"github.com/alvinbaena/pwd-strength/internal/clipboard"
	"github.com/alvinbaena/pwd-strength/internal/generator"
	"github.com/spf13/cobra"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCommand()
		},
	}
)

func init() {
	generateCmd.Flags().IntVarP(&length, "length", "l", generator.DefaultLength, "Length of each password")
	generateCmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passwords to generate")
	generateCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the password to the clipboard. Only valid for a single password")

	rootCmd.AddCommand(generateCmd)
}

func generateCommand() error {
	if _, err := setup(); err != nil {
		return err
	}

	if count < 1 {
		return errors.New("count must be at least 1")
	}
	if copyResult && count != 1 {
		return errors.New("only a single password can be copied")
	}

	var password string
	for i := 0; i < count; i++ {
		var err error
		if password, err = generator.Generate(length); err != nil {
			return err
		}
		fmt.Println(password)
	}

	if copyResult {
		<-copyToClipboard(password)
	}
	return nil
}

// copyToClipboard reports the outcome as a log line instead of a toast.
func copyToClipboard(text string) <-chan struct{} {
	return clipboard.NewHelper(clipboard.System, clipboard.LogDisplay{}, clipboard.Timing{}).Copy(text)
}
