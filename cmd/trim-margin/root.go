package main

import (
	"fmt"
	"path/filepath"

	"github.com/aziis98/trim-margin/internal/config"
	"github.com/aziis98/trim-margin/internal/database"
	"github.com/aziis98/trim-margin/internal/logging"
	"github.com/aziis98/trim-margin/internal/source"
	"github.com/aziis98/trim-margin/margin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by the commands of one run
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	db      *database.DB
	cfgPath string
}

// NewRootCmd builds the command tree. When called without a subcommand it
// trims the given files, or stdin.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "trim-margin [files...]",
		Short: "Strip layout indentation from margin-delimited text",
		Long: margin.Trim(`
			|Remove the indentation that multi-line text picks up when it is
			|embedded in source code. Every line may start with blanks followed
			|by a margin marker ('|' by default); both are dropped. A blank first
			|and last line are dropped too, lines without a marker are kept as is.
			|
			|Without a subcommand, files (or stdin) are trimmed to stdout.
		`),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logging.Setup(verbose, cmd.ErrOrStderr())

			if a.cfgPath != "" {
				a.v.SetConfigFile(a.cfgPath)
			}
			for _, name := range []string{"marker", "prefix", "strict", "verbose"} {
				if err := a.v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("binding flag %s: %w", name, err)
				}
			}

			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Setup(cfg.Verbose, cmd.ErrOrStderr())
			logging.Debugf("Margin prefix %q, strict: %t", cfg.Trimmer().Prefix(), cfg.Strict)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.db != nil {
				err := a.db.Close()
				a.db = nil
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTrim(cmd, args, trimOptions{})
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.StringVar(&a.cfgPath, "config", "", "path to config file")
	flags.StringP("marker", "m", string(margin.DefaultMarker), "margin marker character")
	flags.String("prefix", "", "multi-character margin prefix (overrides --marker)")
	flags.Bool("strict", false, "fail when a content line has no margin")

	rootCmd.AddCommand(
		newTrimCmd(a),
		newBuildCmd(a),
		newInspectCmd(a),
		newListCmd(a),
		newCleanCmd(a),
		newLiveCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// loader returns a source loader for the loaded configuration
func (a *app) loader() *source.Loader {
	return source.New(a.cfg.Extension, a.cfg.Trimmer(), a.cfg.Strict)
}

// openDB opens the render cache. With create set a new cache is created in
// the working directory when none exists up the tree.
func (a *app) openDB(create bool) error {
	if create {
		if err := a.cfg.FindOrCreateDBPath(); err != nil {
			return fmt.Errorf("finding or creating render cache path: %w", err)
		}
	} else if err := a.cfg.FindExistingDBPath(); err != nil {
		return fmt.Errorf("no render cache found - please run 'build' first")
	}

	logging.Debugf("Using render cache at: %s", a.cfg.DBPath)

	db, err := database.New(a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing render cache: %w", err)
	}
	a.db = db
	return nil
}

// cacheKey names path relative to the directory holding the render cache, so
// entries stay valid whichever directory a command runs from.
func (a *app) cacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return filepath.Rel(filepath.Dir(a.db.Path()), abs)
}

// cachedPath turns a cache key back into a path on disk
func (a *app) cachedPath(key string) string {
	return filepath.Join(filepath.Dir(a.db.Path()), key)
}
