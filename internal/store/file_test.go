package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/devashish/pokedex-api/internal/models"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokedex.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return s, path
}

func bulbasaur() models.Pokemon {
	return models.Pokemon{
		ID:   1,
		Name: models.Name{English: "Bulbasaur", Japanese: "フシギダネ", French: "Bulbizarre"},
		Type: []string{"Grass", "Poison"},
		Base: &models.BaseStats{
			HP: 45, Attack: 49, Defense: 49,
			SpAttack: 65, SpDefense: 65, Speed: 45,
		},
		Image: "assets/images/001.png",
	}
}

// requireDiskMatches re-parses the backing file and compares it to the
// store's in-memory view.
func requireDiskMatches(t *testing.T, s *FileStore, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backing file: %v", err)
	}
	var onDisk []models.Pokemon
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("parse backing file: %v", err)
	}
	inMem, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(onDisk, inMem) {
		t.Fatalf("disk/memory mismatch:\n disk: %+v\n mem:  %+v", onDisk, inMem)
	}
}

func TestFileStoreCreateGetDelete(t *testing.T) {
	s, path := newTestFileStore(t)
	ctx := context.Background()

	want := bulbasaur()
	if _, err := s.Create(ctx, want); err != nil {
		t.Fatalf("create: %v", err)
	}
	requireDiskMatches(t, s, path)

	got, err := s.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(*got, want) {
		t.Fatalf("got %+v, want %+v", *got, want)
	}

	removed, err := s.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != 1 {
		t.Fatalf("deleted id = %d, want 1", removed.ID)
	}
	requireDiskMatches(t, s, path)

	if _, err := s.GetByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}
	if _, err := s.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreUpdateShallowMerge(t *testing.T) {
	s, path := newTestFileStore(t)
	ctx := context.Background()

	orig := bulbasaur()
	if _, err := s.Create(ctx, orig); err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := models.Name{French: "Pikachu"}
	got, err := s.Update(ctx, 1, models.PokemonPatch{Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// name replaced wholesale, every other top-level field untouched
	if got.Name != newName {
		t.Fatalf("name = %+v, want %+v", got.Name, newName)
	}
	if !reflect.DeepEqual(got.Type, orig.Type) {
		t.Fatalf("type changed: %v", got.Type)
	}
	if !reflect.DeepEqual(got.Base, orig.Base) {
		t.Fatalf("base changed: %+v", got.Base)
	}
	if got.Image != orig.Image {
		t.Fatalf("image changed: %q", got.Image)
	}
	requireDiskMatches(t, s, path)

	if _, err := s.Update(ctx, 404, models.PokemonPatch{Name: &newName}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreAllowsDuplicateIDs(t *testing.T) {
	s, path := newTestFileStore(t)
	ctx := context.Background()

	p := bulbasaur()
	for i := 0; i < 2; i++ {
		if _, err := s.Create(ctx, p); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	requireDiskMatches(t, s, path)
}

func TestFileStoreReload(t *testing.T) {
	s, path := newTestFileStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, bulbasaur()); err != nil {
		t.Fatalf("create: %v", err)
	}

	reloaded, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	all, err := reloaded.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != 1 {
		t.Fatalf("reloaded = %+v", all)
	}
}

func TestFileStorePreservesInsertionOrder(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	for _, id := range []int{25, 1, 150} {
		if _, err := s.Create(ctx, models.Pokemon{ID: id}); err != nil {
			t.Fatalf("create %d: %v", id, err)
		}
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []int{25, 1, 150} {
		if all[i].ID != want {
			t.Fatalf("all[%d].ID = %d, want %d", i, all[i].ID, want)
		}
	}
}
