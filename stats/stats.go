// Package stats persists per-level best results to the user stats file
package stats

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// LevelResult is the outcome of one completed level
type LevelResult struct {
	LevelID string `toml:"level_id"`
	TimeMs  int64  `toml:"time"`
	Score   int    `toml:"score"`
}

// Store records level results
type Store interface {
	Record(LevelResult) error
}

// UserStats is the on-disk layout; each list grows only with improving entries
type UserStats struct {
	ByPoints []LevelResult `toml:"level_results_points"`
	ByTime   []LevelResult `toml:"level_results_time"`
}

// Best returns the lowest time and highest score recorded for a level
func (u *UserStats) Best(levelID string) (timeMs int64, score int, ok bool) {
	timeMs, hasTime := u.bestTime(levelID)
	score, hasScore := u.bestScore(levelID)
	return timeMs, score, hasTime || hasScore
}

func (u *UserStats) bestTime(levelID string) (int64, bool) {
	best, ok := int64(0), false
	for _, r := range u.ByTime {
		if r.LevelID == levelID && (!ok || r.TimeMs < best) {
			best, ok = r.TimeMs, true
		}
	}
	return best, ok
}

func (u *UserStats) bestScore(levelID string) (int, bool) {
	best, ok := 0, false
	for _, r := range u.ByPoints {
		if r.LevelID == levelID && (!ok || r.Score > best) {
			best, ok = r.Score, true
		}
	}
	return best, ok
}

// Manager is a Store backed by a TOML file, fully loaded and fully rewritten per record
type Manager struct {
	mu   sync.Mutex
	path string
	log  logrus.FieldLogger
}

// NewManager creates a manager for the stats file at path
func NewManager(path string, log logrus.FieldLogger) *Manager {
	return &Manager{path: path, log: log}
}

// Path returns the stats file location
func (m *Manager) Path() string {
	return m.path
}

// Load reads the stats file; a missing or unreadable file yields empty stats
func (m *Manager) Load() *UserStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

func (m *Manager) load() *UserStats {
	var u UserStats
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.log.WithError(err).WithField("path", m.path).Warn("stats file unreadable, starting empty")
		}
		return &u
	}
	if _, err := toml.Decode(string(data), &u); err != nil {
		m.log.WithError(err).WithField("path", m.path).Warn("stats file malformed, starting empty")
		return &UserStats{}
	}
	return &u
}

// Record appends the result to each list it improves and rewrites the file
// A result that improves neither list leaves the file untouched
func (m *Manager) Record(result LevelResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := m.load()

	bestTime, hasTime := u.bestTime(result.LevelID)
	bestScore, hasScore := u.bestScore(result.LevelID)

	changed := false
	if !hasTime || result.TimeMs < bestTime {
		u.ByTime = append(u.ByTime, result)
		changed = true
	}
	if !hasScore || result.Score > bestScore {
		u.ByPoints = append(u.ByPoints, result)
		changed = true
	}
	if !changed {
		return nil
	}

	if err := m.save(u); err != nil {
		m.log.WithError(err).WithField("path", m.path).Error("failed to write stats")
		return err
	}

	m.log.WithFields(logrus.Fields{
		"level": result.LevelID,
		"time":  result.TimeMs,
		"score": result.Score,
	}).Info("level result recorded")
	return nil
}

// save writes through a temp file so a crash never leaves a truncated stats file
func (m *Manager) save(u *UserStats) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(u); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".user_stats-*.toml")
	if err != nil {
		return fmt.Errorf("create temp stats: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close stats: %w", err)
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace stats: %w", err)
	}
	return nil
}
