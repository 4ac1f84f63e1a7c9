package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aziis98/trim-margin/internal/logging"
	"github.com/aziis98/trim-margin/internal/source"
	"github.com/aziis98/trim-margin/margin"
	"github.com/spf13/cobra"
)

type trimOptions struct {
	inPlace   bool
	noNewline bool
}

func newTrimCmd(a *app) *cobra.Command {
	var opts trimOptions

	cmd := &cobra.Command{
		Use:   "trim [files...]",
		Short: "Trim the margin of files or stdin",
		Long: margin.Trim(`
			|Trim the margin of each file and print the result. With no files,
			|or with "-", stdin is read. Use --in-place to rewrite the files.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTrim(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.inPlace, "in-place", "i", false, "rewrite files instead of printing")
	cmd.Flags().BoolVarP(&opts.noNewline, "no-newline", "n", false, "do not print a final newline")
	return cmd
}

func (a *app) runTrim(cmd *cobra.Command, args []string, opts trimOptions) error {
	loader := a.loader()
	if len(args) == 0 {
		args = []string{"-"}
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		if arg == "-" && opts.inPlace {
			return fmt.Errorf("cannot use --in-place with stdin")
		}

		text, err := readInput(cmd, loader, arg)
		if err != nil {
			return err
		}

		trimmed, err := loader.Trim(text)
		if err != nil {
			return fmt.Errorf("trimming %s: %w", displayName(arg), err)
		}

		if opts.inPlace {
			if err := rewrite(arg, trimmed); err != nil {
				return err
			}
			logging.Infof("Trimmed %s", arg)
			continue
		}

		if _, err := io.WriteString(out, trimmed); err != nil {
			return err
		}
		if !opts.noNewline && !strings.HasSuffix(trimmed, "\n") {
			fmt.Fprintln(out)
		}
	}
	return nil
}

func readInput(cmd *cobra.Command, loader *source.Loader, arg string) (string, error) {
	if arg == "-" {
		text, err := source.Decode(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return text, nil
	}
	return loader.ReadText(arg)
}

// rewrite replaces the content of path keeping its permissions
func rewrite(path, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func displayName(arg string) string {
	if arg == "-" {
		return "stdin"
	}
	return arg
}
