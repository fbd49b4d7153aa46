package service

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/oops"

	"querywizard/internal/modules/channel/domain"
	"querywizard/internal/modules/channel/repository"
	"querywizard/internal/shared/errors"
)

// Service handles channel business logic: normalization, uniqueness and
// ordering on top of the repository. Every mutation re-reads the persisted
// collection before changing it, so no cache can go stale across calls.
type Service struct {
	repo repository.Repository
	mu   sync.Mutex
}

// New creates a new channel service
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all saved channels sorted ascending.
func (s *Service) List() []domain.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Load()
}

// Add normalizes raw and inserts it into the collection. Duplicate checks are
// exact, case-sensitive matches.
func (s *Service) Add(raw string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := domain.Normalize(raw)
	if name.IsEmpty() {
		return "", errors.ErrEmptyName
	}

	channels := s.repo.Load()
	if lo.Contains(channels, name) {
		return "", oops.With("channel", name.String()).Wrapf(errors.ErrDuplicateName, "channel '%s' already exists", name)
	}

	if err := s.repo.Save(append(channels, name)); err != nil {
		return "", oops.With("channel", name.String()).Wrapf(errors.ErrPersistence, "failed to save channels: %v", err)
	}

	return fmt.Sprintf("Channel '%s' added", name), nil
}

// Remove deletes name from the collection. The name must match exactly.
func (s *Service) Remove(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := domain.Channel(name)
	channels := s.repo.Load()
	if !lo.Contains(channels, target) {
		return "", oops.With("channel", name).Wrapf(errors.ErrNotFound, "channel '%s' not found", name)
	}

	remaining := lo.Filter(channels, func(c domain.Channel, _ int) bool {
		return c != target
	})
	if err := s.repo.Save(remaining); err != nil {
		return "", oops.With("channel", name).Wrapf(errors.ErrPersistence, "failed to save channels: %v", err)
	}

	return fmt.Sprintf("Channel '%s' removed", name), nil
}

// Rename replaces oldName with the normalized form of newRaw. Renaming a
// channel to its current name is a no-op success. The new name must be unique
// among all other channels.
func (s *Service) Rename(oldName, newRaw string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := domain.Channel(oldName)
	channels := s.repo.Load()
	if !lo.Contains(channels, old) {
		return "", oops.With("channel", oldName).Wrapf(errors.ErrNotFound, "channel '%s' not found", oldName)
	}

	name := domain.Normalize(newRaw)
	if name.IsEmpty() {
		return "", errors.ErrEmptyName
	}

	if name != old && lo.Contains(channels, name) {
		return "", oops.With("channel", name.String()).Wrapf(errors.ErrDuplicateName, "channel '%s' already exists", name)
	}

	renamed := lo.Map(channels, func(c domain.Channel, _ int) domain.Channel {
		if c == old {
			return name
		}
		return c
	})
	if err := s.repo.Save(renamed); err != nil {
		return "", oops.With("channel", name.String()).Wrapf(errors.ErrPersistence, "failed to save channels: %v", err)
	}

	return fmt.Sprintf("Channel '%s' renamed to '%s'", old, name), nil
}
