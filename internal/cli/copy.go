package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	copyCmd = &cobra.Command{
		Use:   "copy [TEXT]",
		Short: "Copy text to the system clipboard. Without arguments the first line of stdin is copied",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return copyCommand(args[0])
			}

			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("nothing to copy")
			}
			return copyCommand(strings.TrimRight(line, "\r\n"))
		},
	}
)

func init() {
	rootCmd.AddCommand(copyCmd)
}

func copyCommand(text string) error {
	if _, err := setup(); err != nil {
		return err
	}

	if text == "" {
		return errors.New("nothing to copy")
	}

	<-copyToClipboard(text)
	return nil
}
