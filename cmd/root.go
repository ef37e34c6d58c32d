// Package cmd provides the CLI commands for the lofi application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/lofibeats/lofi-cli/internal/adapters/audio"
	"github.com/lofibeats/lofi-cli/internal/adapters/notification"
	"github.com/lofibeats/lofi-cli/internal/adapters/storage"
	"github.com/lofibeats/lofi-cli/internal/adapters/tui"
	"github.com/lofibeats/lofi-cli/internal/config"
	"github.com/lofibeats/lofi-cli/internal/domain"
	"github.com/lofibeats/lofi-cli/internal/ports"
	"github.com/lofibeats/lofi-cli/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Session flags
	flagWork         int
	flagShort        int
	flagLong         int
	flagCycles       int
	flagResume       int
	flagVolume       float64
	flagMusicFolder  string
	flagNoWorkMusic  bool
	flagNoBreakSound bool
	flagBreakSound   string
	flagResetIgnored bool
)

// rootCmd represents the base command; running it starts a session.
var rootCmd = &cobra.Command{
	Use:   "lofi",
	Short: "A lo-fi Pomodoro timer for the terminal",
	Long: `lofi is a command-line Pomodoro timer that plays a shuffled lo-fi
playlist while you work and an ambient sound during breaks.

During a session press 's' to skip the current track, 'p' to pause or
resume timer and music together, 'i' to ignore a track permanently, and
'q' to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMusicFolder, "music-folder", "", "Folder with work-music tracks (mp3/wav/ogg)")

	rootCmd.Flags().IntVar(&flagWork, "work", 25, "Work minutes")
	rootCmd.Flags().IntVar(&flagShort, "short", 5, "Short break minutes")
	rootCmd.Flags().IntVar(&flagLong, "long", 15, "Long break minutes")
	rootCmd.Flags().IntVar(&flagCycles, "cycles", 4, "Work/break cycles before the long break")
	rootCmd.Flags().IntVar(&flagResume, "resume", 0, "Resume with this many minutes remaining in the first work phase")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Playback volume, 0.0 to 1.0")
	rootCmd.Flags().BoolVar(&flagNoWorkMusic, "no-work-music", false, "Disable music during work phases")
	rootCmd.Flags().BoolVar(&flagNoBreakSound, "no-break-sound", false, "Disable ambient sound during breaks")
	rootCmd.Flags().StringVar(&flagBreakSound, "break-sound", "", "Break sound: rain, fireplace, wind, soft-wind, random, or a file path")
	rootCmd.Flags().BoolVar(&flagResetIgnored, "reset-ignored", false, "Clear the ignored-tracks list before the session starts")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("lofi\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetIgnoredCmd)
}

// newLogger builds the application logger. Interactive runs keep quiet so
// log lines do not fight the timer display.
func newLogger(interactive bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if interactive {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// loadAppConfig loads the config file, falling back to defaults.
func loadAppConfig(logger *log.Logger) *config.Config {
	appCfg, err := config.Load()
	if err != nil {
		logger.Warn("could not load config, using defaults", "err", err)
		appCfg = config.DefaultConfig()
	}
	return appCfg
}

// buildSessionConfig merges config-file values and flag overrides into a
// validated SessionConfig. changed reports whether a flag was set
// explicitly on the command line.
func buildSessionConfig(appCfg *config.Config, changed func(name string) bool) (domain.SessionConfig, error) {
	cfg := domain.SessionConfig{
		WorkDuration:       time.Duration(appCfg.Timer.Work),
		ShortBreakDuration: time.Duration(appCfg.Timer.ShortBreak),
		LongBreakDuration:  time.Duration(appCfg.Timer.LongBreak),
		Cycles:             appCfg.Timer.Cycles,
		Volume:             appCfg.Audio.Volume,
		MusicFolder:        appCfg.Audio.MusicFolder,
		WorkMusic:          !flagNoWorkMusic,
	}

	if changed("work") {
		cfg.WorkDuration = time.Duration(flagWork) * time.Minute
	}
	if changed("short") {
		cfg.ShortBreakDuration = time.Duration(flagShort) * time.Minute
	}
	if changed("long") {
		cfg.LongBreakDuration = time.Duration(flagLong) * time.Minute
	}
	if changed("cycles") {
		cfg.Cycles = flagCycles
	}
	if changed("resume") {
		cfg.Resume = time.Duration(flagResume) * time.Minute
	}
	if changed("volume") {
		cfg.Volume = flagVolume
	}
	if changed("music-folder") {
		cfg.MusicFolder = flagMusicFolder
	}

	if err := cfg.Validate(); err != nil {
		return domain.SessionConfig{}, err
	}
	return cfg, nil
}

// runSession validates configuration, wires the adapters, and runs the
// timer until the session completes or the user quits.
func runSession(cmd *cobra.Command, args []string) error {
	interactive := term.IsTerminal(os.Stdin.Fd())
	logger := newLogger(interactive)
	appCfg := loadAppConfig(logger)

	sessionCfg, err := buildSessionConfig(appCfg, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	store, err := openIgnoreStore()
	if err != nil {
		return err
	}
	if flagResetIgnored {
		if err := store.Reset(); err != nil {
			return fmt.Errorf("failed to reset ignored tracks: %w", err)
		}
		logger.Info("ignored-tracks list cleared")
	}

	tracks, err := openPlaylist(sessionCfg, cmd.Flags().Changed("music-folder"), store, logger)
	if err != nil {
		return err
	}

	if !flagNoBreakSound {
		selection := appCfg.Audio.BreakSound
		if cmd.Flags().Changed("break-sound") {
			selection = flagBreakSound
		}
		soundsDir, err := config.GetSoundsDir(appCfg)
		if err == nil {
			sessionCfg.BreakSound, err = audio.ResolveBreakSound(selection, soundsDir)
		}
		if err != nil {
			logger.Warn("break sound unavailable, breaks will be silent", "err", err)
			sessionCfg.BreakSound = ""
		}
	}

	player, err := audio.NewPlayer()
	if err != nil {
		return err
	}
	defer player.Close()

	notifier := notification.New(&appCfg.Notifications)

	var source ports.TrackSource
	if tracks != nil {
		source = tracks
	}

	svc := services.NewSessionService(sessionCfg, player, source, logger)
	svc.SetOnTransition(func(prev, next domain.Phase, done bool) {
		fmt.Print("\a")
		if done {
			if !interactive {
				fmt.Println("\n🏁 All done! Great job.")
			}
			_ = notifier.NotifySessionComplete()
			return
		}
		if !interactive {
			fmt.Printf("\n%s · cycle %d of %d\n", next.Label(), svc.State().Cycle, svc.State().Cycles)
		}
		_ = notifier.NotifyPhaseChange(next, svc.State().Cycle, svc.State().Cycles)
	})

	ctx := setupSignalHandler()
	svc.Start()
	defer svc.Stop()

	if interactive {
		return tui.Run(ctx, svc, appCfg.Theme)
	}

	logger.Info("no controllable terminal, keyboard control unavailable")
	fmt.Printf("Work · cycle 1 of %d\n", sessionCfg.Cycles)
	return tui.RunHeadless(ctx, svc)
}

// openIgnoreStore loads the persisted ignore list.
func openIgnoreStore() (*storage.IgnoreFile, error) {
	path, err := config.GetIgnoreFilePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// openPlaylist builds the track provider. An unreadable folder is fatal
// only when the user named it explicitly; otherwise the session falls
// back to silence with a warning. A nil provider means silent work phases.
func openPlaylist(cfg domain.SessionConfig, explicitFolder bool, store *storage.IgnoreFile, logger *log.Logger) (*services.PlaylistService, error) {
	if !cfg.WorkMusic {
		return nil, nil
	}
	if cfg.MusicFolder == "" {
		logger.Warn("no music folder configured, running without work music")
		return nil, nil
	}

	playlist, err := services.NewPlaylistService(cfg.MusicFolder, store, logger)
	if err != nil {
		if explicitFolder {
			return nil, err
		}
		logger.Warn("music folder unreadable, running without work music", "folder", cfg.MusicFolder, "err", err)
		return nil, nil
	}
	if playlist.Len() == 0 {
		logger.Warn("no eligible tracks, running without work music", "folder", cfg.MusicFolder)
		return nil, nil
	}
	return playlist, nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
