package cli

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

func NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond)
}

func PrintSuccess(format string, args ...any) {
	color.Green(format, args...)
}

func PrintError(err error) {
	color.Red("Error: %v", err)
}
