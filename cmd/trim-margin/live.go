package main

import (
	"fmt"

	"github.com/aziis98/trim-margin/internal/ui"
	"github.com/aziis98/trim-margin/margin"
	"github.com/spf13/cobra"
)

func newLiveCmd(a *app) *cobra.Command {
	var printOut bool

	cmd := &cobra.Command{
		Use:   "live [file]",
		Short: "Interactive live preview",
		Long: margin.Trim(`
			|Start an interactive terminal UI with an editor on the left and the
			|trimmed result on the right, updated as you type. The marker can be
			|changed on the fly. A file argument preloads the editor.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				var err error
				if text, err = a.loader().ReadText(args[0]); err != nil {
					return err
				}
			}

			uiHandler := ui.New(a.cfg.Trimmer().Prefix(), a.cfg.Strict, text)
			output, err := uiHandler.HandleLivePreviewCommand()
			if err != nil {
				return err
			}
			if printOut {
				fmt.Fprintln(cmd.OutOrStdout(), output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&printOut, "print", "p", false, "print the trimmed text on exit")
	return cmd
}
