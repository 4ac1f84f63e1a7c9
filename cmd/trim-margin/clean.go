package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aziis98/trim-margin/internal/logging"
	"github.com/aziis98/trim-margin/margin"
	"github.com/spf13/cobra"
)

func newCleanCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Forget renders of deleted sources",
		Long: margin.Trim(`
			|Remove cache entries whose source file no longer exists.
			|With --all the whole render cache is emptied, so the next build
			|renders every source again.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDB(false); err != nil {
				return err
			}
			return a.runClean(cmd, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "empty the whole render cache")
	return cmd
}

func (a *app) runClean(cmd *cobra.Command, all bool) error {
	out := cmd.OutOrStdout()

	if all {
		fmt.Fprintln(out, "Emptying render cache...")
		if err := a.db.Reset(); err != nil {
			return err
		}
		a.printCacheSize(out)
		return nil
	}

	records, err := a.db.ListRenders(0)
	if err != nil {
		return err
	}

	var stale []string
	for _, rec := range records {
		if _, err := os.Stat(a.cachedPath(rec.Source)); errors.Is(err, fs.ErrNotExist) {
			logging.Debugf("Source gone: %s", rec.Source)
			stale = append(stale, rec.Source)
		}
	}

	removed, err := a.db.Forget(stale)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Forgot %d of %d render(s).\n", removed, len(records))
	a.printCacheSize(out)
	return nil
}
