package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/baluflix/baluflix/internal/catalog"
	"github.com/baluflix/baluflix/internal/models"
)

// Store keeps the whole catalog as one JSON array on disk. Every write
// rewrites the file through a temp-file rename, guarded by a mutex, so
// it is only suitable for a single process at the scale this backend
// targets.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) Insert(ctx context.Context, video *models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.load()
	if err != nil {
		return err
	}

	videos = append(videos, *video)
	return s.save(videos)
}

func (s *Store) List(ctx context.Context, publishedOnly bool) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if publishedOnly && !v.Published {
			continue
		}
		out = append(out, v)
	}

	// Newest first; ties keep insertion order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range videos {
		if videos[i].StorageKey == key {
			v := videos[i]
			return &v, nil
		}
	}
	return nil, catalog.ErrStoreNotFound
}

func (s *Store) Publish(ctx context.Context, key string) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range videos {
		if videos[i].StorageKey == key {
			if !videos[i].Published {
				videos[i].Published = true
				if err := s.save(videos); err != nil {
					return nil, err
				}
			}
			v := videos[i]
			return &v, nil
		}
	}
	return nil, catalog.ErrStoreNotFound
}

// load reads the array; a missing file is an empty catalog.
func (s *Store) load() ([]models.Video, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var videos []models.Video
	if err := json.Unmarshal(b, &videos); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}
	return videos, nil
}

// save writes JSON to a temp file then renames it into place.
func (s *Store) save(videos []models.Video) error {
	b, err := json.MarshalIndent(videos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
