// Package prefs persists a player's look sensitivity between sessions.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"

	"github.com/phanxgames/touchlook"
)

const sensitivityKey = "sensitivity"

// Storage is the subset of gdata.Manager a Store needs.
type Storage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
	ItemExists(itemKey string) bool
}

// Store reads and writes saved look settings.
type Store struct {
	storage Storage
}

// Open opens the platform data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open prefs: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing storage backend.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// LoadSensitivity returns the saved sensitivity. ok is false when nothing
// has been saved yet.
func (s *Store) LoadSensitivity() (sens touchlook.Sensitivity, ok bool, err error) {
	if !s.storage.ItemExists(sensitivityKey) {
		return touchlook.Sensitivity{}, false, nil
	}
	data, err := s.storage.LoadItem(sensitivityKey)
	if err != nil {
		return touchlook.Sensitivity{}, false, fmt.Errorf("load sensitivity: %w", err)
	}
	if err := json.Unmarshal(data, &sens); err != nil {
		return touchlook.Sensitivity{}, false, fmt.Errorf("parse sensitivity: %w", err)
	}
	if sens.Timestep <= 0 {
		return touchlook.Sensitivity{}, false, fmt.Errorf("parse sensitivity: timestep must be positive, got %v", sens.Timestep)
	}
	return sens, true, nil
}

// SaveSensitivity stores sens, replacing any previous value.
func (s *Store) SaveSensitivity(sens touchlook.Sensitivity) error {
	data, err := json.Marshal(sens)
	if err != nil {
		return fmt.Errorf("encode sensitivity: %w", err)
	}
	if err := s.storage.SaveItem(sensitivityKey, data); err != nil {
		return fmt.Errorf("save sensitivity: %w", err)
	}
	return nil
}
