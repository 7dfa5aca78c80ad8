package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/devashish/pokedex-api/internal/models"
)

// FileStore keeps the whole catalog in memory and mirrors it to a single
// JSON file, rewriting the full file after every mutation. A mutex guards
// every read-modify-write so concurrent requests cannot corrupt the file
// or lose updates.
type FileStore struct {
	mu       sync.Mutex
	path     string
	pokemons []models.Pokemon
}

// NewFileStore loads the catalog from path, creating an empty file (and
// its parent directory) if none exists yet.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, pokemons: []models.Pokemon{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		if err := s.flush(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.pokemons); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// flush rewrites the backing file from the in-memory list. Callers must
// hold the mutex.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.pokemons, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) ListAll(ctx context.Context) ([]models.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Pokemon, len(s.pokemons))
	copy(out, s.pokemons)
	return out, nil
}

// Create appends the record as given. Duplicate ids are not rejected here;
// the Mongo backend enforces uniqueness through its index instead.
func (s *FileStore) Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pokemons = append(s.pokemons, p)
	if err := s.flush(); err != nil {
		return models.Pokemon{}, err
	}
	return p, nil
}

func (s *FileStore) GetByID(ctx context.Context, id int) (*models.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pokemons {
		if s.pokemons[i].ID == id {
			p := s.pokemons[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) Update(ctx context.Context, id int, patch models.PokemonPatch) (*models.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pokemons {
		if s.pokemons[i].ID != id {
			continue
		}
		patch.Apply(&s.pokemons[i])
		if err := s.flush(); err != nil {
			return nil, err
		}
		p := s.pokemons[i]
		return &p, nil
	}
	return nil, ErrNotFound
}

func (s *FileStore) Delete(ctx context.Context, id int) (*models.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pokemons {
		if s.pokemons[i].ID != id {
			continue
		}
		p := s.pokemons[i]
		s.pokemons = append(s.pokemons[:i], s.pokemons[i+1:]...)
		if err := s.flush(); err != nil {
			return nil, err
		}
		return &p, nil
	}
	return nil, ErrNotFound
}
