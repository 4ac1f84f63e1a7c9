package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aziis98/trim-margin/internal/database"
	"github.com/aziis98/trim-margin/internal/logging"
	"github.com/aziis98/trim-margin/internal/source"
	"github.com/aziis98/trim-margin/internal/util"
	"github.com/aziis98/trim-margin/margin"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	force  bool
	dryRun bool
}

// SourceFileInfo holds information about a source file to be rendered
type SourceFileInfo struct {
	Path        string
	Key         string
	CurrentHash string
	StoredHash  string
}

func newBuildCmd(a *app) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build [folders...]",
		Short: "Render margin sources next to themselves",
		Long: margin.Trim(`
			|Scan directories for margin sources (files ending in the configured
			|extension, ".margin" by default), trim them and write the result
			|next to the source without the extension: notes.txt.margin becomes
			|notes.txt. Only sources that changed since the last build are
			|rendered unless --force is used.
			|
			|If no folders are specified, scans the current directory.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			folders := args
			if len(folders) == 0 {
				folders = []string{"."}
			}
			if err := a.openDB(true); err != nil {
				return err
			}
			return a.runBuild(cmd, folders, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "render every source even if unchanged")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report what would be rendered without writing")
	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, folders []string, opts buildOptions) error {
	loader := a.loader()
	out := cmd.OutOrStdout()

	logging.Debugf("Building folders: %v (force: %t, dry run: %t)", folders, opts.force, opts.dryRun)

	// Phase 1: Source discovery
	fmt.Fprintln(out, "Phase 1: Discovering margin sources...")
	var allSources []string
	for _, folder := range folders {
		sources, err := loader.Crawl(folder)
		if err != nil {
			return fmt.Errorf("crawling %s: %w", folder, err)
		}
		logging.Debugf("Found %d sources in %s", len(sources), folder)
		allSources = append(allSources, sources...)
	}

	if len(allSources) == 0 {
		fmt.Fprintln(out, "No margin sources found.")
		return nil
	}
	fmt.Fprintf(out, "Found %d sources.\n\n", len(allSources))

	// Phase 2: Hash checking
	fmt.Fprintln(out, "Phase 2: Checking file hashes...")
	toRender := a.checkHashes(cmd, loader, allSources, opts.force)
	if len(toRender) == 0 {
		fmt.Fprintln(out, "All renders are up to date.")
		a.printCacheSize(out)
		return nil
	}
	fmt.Fprintf(out, "%d sources need rendering.\n\n", len(toRender))

	if opts.dryRun {
		for _, info := range toRender {
			fmt.Fprintf(out, "would render %s\n", info.Path)
		}
		return nil
	}

	// Phase 3: Rendering
	fmt.Fprintln(out, "Phase 3: Rendering...")
	rendered, failed := a.renderSources(cmd, loader, toRender)

	fmt.Fprintf(out, "\nBuild completed. Checked %d sources, rendered %d.\n", len(allSources), rendered)
	a.printCacheSize(out)

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed to render", failed, len(toRender))
	}
	return nil
}

// newBar creates a progress bar unless verbose logging already reports progress
func (a *app) newBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if a.cfg.Verbose {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// checkHashes returns the sources whose content changed since their last render
func (a *app) checkHashes(cmd *cobra.Command, loader *source.Loader, sources []string, force bool) []SourceFileInfo {
	var toRender []SourceFileInfo

	bar := a.newBar(cmd.ErrOrStderr(), len(sources), "Checking hashes")
	for i, path := range sources {
		logging.Debugf("[%d/%d] Checking hash for: %s", i+1, len(sources), path)

		key, err := a.cacheKey(path)
		if err != nil {
			logging.Warnf("Failed to resolve %s: %v", path, err)
			advance(bar)
			continue
		}

		currentHash, err := loader.HashFile(path)
		if err != nil {
			logging.Warnf("Failed to calculate hash for %s: %v", path, err)
			advance(bar)
			continue
		}

		storedHash, err := a.db.GetStoredHash(key)
		if err != nil {
			logging.Warnf("Failed to get stored hash for %s: %v", path, err)
			advance(bar)
			continue
		}

		if force || currentHash != storedHash {
			logging.Debugf("Source needs rendering: %s", path)
			toRender = append(toRender, SourceFileInfo{
				Path:        path,
				Key:         key,
				CurrentHash: currentHash,
				StoredHash:  storedHash,
			})
		} else {
			logging.Debugf("Render up to date: %s", path)
		}
		advance(bar)
	}
	finish(cmd, bar)
	return toRender
}

// renderSources trims and writes each source and records it in the cache
func (a *app) renderSources(cmd *cobra.Command, loader *source.Loader, toRender []SourceFileInfo) (rendered, failed int) {
	bar := a.newBar(cmd.ErrOrStderr(), len(toRender), "Rendering")
	for i, info := range toRender {
		logging.Debugf("[%d/%d] Rendering: %s", i+1, len(toRender), info.Path)

		r, err := loader.Render(info.Path)
		if err == nil {
			err = r.Write()
		}
		var outputKey string
		if err == nil {
			outputKey, err = a.cacheKey(r.Output)
		}
		if err == nil {
			err = a.db.UpsertRender(database.RenderRecord{
				Source:       info.Key,
				Output:       outputKey,
				Hash:         r.Hash,
				Lines:        strings.Count(r.Text, "\n") + 1,
				TrimmedLines: r.Trimmed(),
			})
		}
		if err != nil {
			logging.Errorf("Failed to render %s: %v", info.Path, err)
			failed++
			advance(bar)
			continue
		}

		rendered++
		logging.Debugf("Wrote %s", r.Output)
		advance(bar)
	}
	finish(cmd, bar)
	return rendered, failed
}

func (a *app) printCacheSize(w io.Writer) {
	if size, err := a.db.Size(); err == nil {
		fmt.Fprintf(w, "Render cache size: %s\n", util.FormatFileSize(size))
	} else {
		logging.Debugf("Could not determine render cache size: %v", err)
	}
}

func advance(bar *progressbar.ProgressBar) {
	if bar != nil {
		bar.Add(1)
	}
}

func finish(cmd *cobra.Command, bar *progressbar.ProgressBar) {
	if bar != nil {
		fmt.Fprintln(cmd.ErrOrStderr()) // New line after progress bar
	}
}
