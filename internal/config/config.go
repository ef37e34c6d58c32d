// Package config provides configuration management for lofi.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the lofi application. CLI flags
// override these values for a single run.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Audio         AudioConfig        `mapstructure:"audio"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds phase durations and the cycle count.
type TimerConfig struct {
	Work       Duration `mapstructure:"work"`
	ShortBreak Duration `mapstructure:"short_break"`
	LongBreak  Duration `mapstructure:"long_break"`
	Cycles     int      `mapstructure:"cycles"`
}

// AudioConfig holds playback settings.
type AudioConfig struct {
	Volume      float64 `mapstructure:"volume"`
	MusicFolder string  `mapstructure:"music_folder"`
	SoundsDir   string  `mapstructure:"sounds_dir"`
	BreakSound  string  `mapstructure:"break_sound"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ThemeConfig holds display colors.
type ThemeConfig struct {
	ColorWork   string `mapstructure:"color_work"`
	ColorBreak  string `mapstructure:"color_break"`
	ColorPaused string `mapstructure:"color_paused"`
	ColorHelp   string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default display colors.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:   "#7C6FE0",
		ColorBreak:  "#4ECDC4",
		ColorPaused: "#6B7280",
		ColorHelp:   "#95A5A6",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Work:       Duration(25 * time.Minute),
			ShortBreak: Duration(5 * time.Minute),
			LongBreak:  Duration(15 * time.Minute),
			Cycles:     4,
		},
		Audio: AudioConfig{
			Volume:     1.0,
			BreakSound: "random",
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// DataDir returns the directory holding the config file, ignore file and
// default sound folders.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".lofi"), nil
}

// GetConfigPath returns the path of the TOML config file.
func GetConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetIgnoreFilePath returns the path of the persisted ignore list.
func GetIgnoreFilePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ignored_tracks"), nil
}

// GetSoundsDir resolves the break-sounds directory: configured value first,
// falling back to <data dir>/sounds.
func GetSoundsDir(cfg *Config) (string, error) {
	if cfg.Audio.SoundsDir != "" {
		return cfg.Audio.SoundsDir, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sounds"), nil
}

func setDefaults() {
	defaults := DefaultConfig()
	viper.SetDefault("timer.work", defaults.Timer.Work.String())
	viper.SetDefault("timer.short_break", defaults.Timer.ShortBreak.String())
	viper.SetDefault("timer.long_break", defaults.Timer.LongBreak.String())
	viper.SetDefault("timer.cycles", defaults.Timer.Cycles)
	viper.SetDefault("audio.volume", defaults.Audio.Volume)
	viper.SetDefault("audio.music_folder", "")
	viper.SetDefault("audio.sounds_dir", "")
	viper.SetDefault("audio.break_sound", defaults.Audio.BreakSound)
	viper.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	viper.SetDefault("theme.color_work", defaults.Theme.ColorWork)
	viper.SetDefault("theme.color_break", defaults.Theme.ColorBreak)
	viper.SetDefault("theme.color_paused", defaults.Theme.ColorPaused)
	viper.SetDefault("theme.color_help", defaults.Theme.ColorHelp)
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")
	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("timer.work", cfg.Timer.Work.String())
	viper.Set("timer.short_break", cfg.Timer.ShortBreak.String())
	viper.Set("timer.long_break", cfg.Timer.LongBreak.String())
	viper.Set("timer.cycles", cfg.Timer.Cycles)
	viper.Set("audio.volume", cfg.Audio.Volume)
	viper.Set("audio.music_folder", cfg.Audio.MusicFolder)
	viper.Set("audio.sounds_dir", cfg.Audio.SoundsDir)
	viper.Set("audio.break_sound", cfg.Audio.BreakSound)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("theme.color_work", cfg.Theme.ColorWork)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
