package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAssets     = "TRICK_RUNNER_ASSETS"
	EnvPlayerData = "TRICK_RUNNER_PLAYER_DATA"
	EnvSentryDSN  = "SENTRY_DSN"
)

// Paths locates the asset and player data directories
type Paths struct {
	Assets     string
	PlayerData string
	SentryDSN  string
}

// LoadEnv reads an optional .env file, then resolves paths from the environment
// A missing .env is not an error
func LoadEnv(envFile string) (Paths, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Paths{}, &ParseError{Path: envFile, Reason: err.Error(), Err: err}
	}

	p := Paths{
		Assets:     "./assets",
		PlayerData: "",
		SentryDSN:  os.Getenv(EnvSentryDSN),
	}
	if v := os.Getenv(EnvAssets); v != "" {
		p.Assets = v
	}
	if v := os.Getenv(EnvPlayerData); v != "" {
		p.PlayerData = v
	}
	return p, nil
}

// ConstantsFile is the constants path under the asset directory
func (p Paths) ConstantsFile() string {
	return filepath.Join(p.Assets, "constants.toml")
}

// TrickListFile is the trick dictionary path under the asset directory
func (p Paths) TrickListFile() string {
	return filepath.Join(p.Assets, "trick_list.hjson")
}

// LevelFile is the level description path for a level id
func (p Paths) LevelFile(levelID string, ext string) string {
	return filepath.Join(p.Assets, "levels", levelID+ext)
}

// StatsFile resolves the user stats file, preferring the environment over constants
func (p Paths) StatsFile(c *Constants) string {
	dir := p.PlayerData
	if dir == "" {
		dir = c.PathToPlayerData
	}
	return filepath.Join(dir, "user_stats.toml")
}
