package repository

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/oops"

	"querywizard/internal/modules/channel/domain"
)

const channelsFile = "channels.json"

// FileStorage implements Repository using a single JSON document on disk:
// a flat string array, kept sorted, indented for hand-editing.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-based channel repository rooted at basePath.
// The directory is created on first use.
func NewFileStorage(basePath string) (Repository, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create data directory").Wrap(err)
	}

	return &FileStorage{path: filepath.Join(basePath, channelsFile)}, nil
}

func (s *FileStorage) Load() []domain.Channel {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read channels file, treating as empty", "path", s.path, "error", err)
		}
		return []domain.Channel{}
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		slog.Warn("Malformed channels file, treating as empty", "path", s.path, "error", err)
		return []domain.Channel{}
	}

	channels := lo.Map(names, func(name string, _ int) domain.Channel {
		return domain.Channel(name)
	})
	slices.Sort(channels)
	return channels
}

func (s *FileStorage) Save(channels []domain.Channel) error {
	sorted := slices.Clone(channels)
	slices.Sort(sorted)

	names := lo.Map(sorted, func(c domain.Channel, _ int) string {
		return c.String()
	})
	if names == nil {
		names = []string{}
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return oops.With("path", s.path, "context", "failed to marshal channels").Wrap(err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return oops.With("path", s.path, "context", "failed to write channels").Wrap(err)
	}

	return nil
}
