package pokedex

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devashish/pokedex-api/internal/models"
	"github.com/devashish/pokedex-api/internal/store"
)

// RecordStore defines the interface for Pokémon record persistence.
type RecordStore interface {
	ListAll(ctx context.Context) ([]models.Pokemon, error)
	Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error)
	GetByID(ctx context.Context, id int) (*models.Pokemon, error)
	Update(ctx context.Context, id int, patch models.PokemonPatch) (*models.Pokemon, error)
	Delete(ctx context.Context, id int) (*models.Pokemon, error)
}

// Handler holds the catalog HTTP handlers.
type Handler struct {
	records RecordStore
}

func NewHandler(records RecordStore) *Handler {
	return &Handler{records: records}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// idParam parses the {id} route parameter. A non-numeric id is a malformed
// request, not a missing record.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

// List returns every record in the catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pokemons, err := h.records.ListAll(r.Context())
	if err != nil {
		log.Printf("list pokemons: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if pokemons == nil {
		pokemons = []models.Pokemon{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pokemons": pokemons})
}

// Create inserts a record with a client-chosen id.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Pokemon
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.ID == 0 {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	created, err := h.records.Create(r.Context(), p)
	if err != nil {
		log.Printf("create pokemon %d: %v", p.ID, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "pokemon created",
		"pokemon": created,
	})
}

// Get returns a single record.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	p, err := h.records.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}
	if err != nil {
		log.Printf("get pokemon %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Update shallow-merges the request body onto the stored record: only the
// top-level fields present in the body are overwritten.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var patch models.PokemonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.records.Update(r.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}
	if err != nil {
		log.Printf("update pokemon %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "pokemon updated",
		"pokemon": p,
	})
}

// Delete removes a record and returns it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	p, err := h.records.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}
	if err != nil {
		log.Printf("delete pokemon %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "pokemon deleted",
		"pokemon": p,
	})
}
