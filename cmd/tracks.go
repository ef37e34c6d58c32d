package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/lofibeats/lofi-cli/internal/services"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks [query]",
	Short: "List eligible and ignored tracks",
	Long: `List the tracks a session would draw from, plus the ones on the
ignore list. An optional query fuzzy-filters both lists by file name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTracks,
}

func runTracks(cmd *cobra.Command, args []string) error {
	logger := newLogger(true)
	appCfg := loadAppConfig(logger)

	folder := appCfg.Audio.MusicFolder
	if cmd.Flags().Changed("music-folder") {
		folder = flagMusicFolder
	}
	if folder == "" {
		return fmt.Errorf("no music folder configured; set audio.music_folder or pass --music-folder")
	}

	store, err := openIgnoreStore()
	if err != nil {
		return err
	}

	playlist, err := services.NewPlaylistService(folder, store, logger)
	if err != nil {
		return err
	}

	eligible := playlist.Tracks()
	ignored := store.Paths()
	if len(args) == 1 {
		eligible = fuzzyFilter(eligible, args[0])
		ignored = fuzzyFilter(ignored, args[0])
	}

	fmt.Printf("Eligible tracks (%d):\n", len(eligible))
	if len(eligible) == 0 {
		fmt.Println("  (none)")
	}
	for _, path := range eligible {
		fmt.Printf("  %s\n", filepath.Base(path))
	}

	fmt.Printf("\nIgnored tracks (%d):\n", len(ignored))
	if len(ignored) == 0 {
		fmt.Println("  (none)")
	}
	for _, path := range ignored {
		fmt.Printf("  %s\n", filepath.Base(path))
	}
	return nil
}

// fuzzyFilter matches query against file names and returns the matching
// paths, sorted.
func fuzzyFilter(paths []string, query string) []string {
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = filepath.Base(path)
	}

	var out []string
	for _, match := range fuzzy.Find(query, names) {
		out = append(out, paths[match.Index])
	}
	sort.Strings(out)
	return out
}
