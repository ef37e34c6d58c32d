package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lofibeats/lofi-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger := newLogger(true)
	appCfg := loadAppConfig(logger)

	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	ignorePath, err := config.GetIgnoreFilePath()
	if err != nil {
		return err
	}
	soundsDir, err := config.GetSoundsDir(appCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Config file:    %s\n\n", configPath)
	fmt.Println("[timer]")
	fmt.Printf("  work        = %s\n", appCfg.Timer.Work)
	fmt.Printf("  short_break = %s\n", appCfg.Timer.ShortBreak)
	fmt.Printf("  long_break  = %s\n", appCfg.Timer.LongBreak)
	fmt.Printf("  cycles      = %d\n", appCfg.Timer.Cycles)
	fmt.Println("\n[audio]")
	fmt.Printf("  volume       = %.2f\n", appCfg.Audio.Volume)
	fmt.Printf("  music_folder = %s\n", valueOrUnset(appCfg.Audio.MusicFolder))
	fmt.Printf("  sounds_dir   = %s\n", soundsDir)
	fmt.Printf("  break_sound  = %s\n", valueOrUnset(appCfg.Audio.BreakSound))
	fmt.Println("\n[notifications]")
	fmt.Printf("  enabled = %t\n", appCfg.Notifications.Enabled)
	fmt.Printf("\nIgnore file:    %s\n", ignorePath)
	return nil
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
