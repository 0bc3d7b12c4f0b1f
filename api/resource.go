package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/fieldsolutions/backend/internal/apperr"
	"github.com/fieldsolutions/backend/pkg/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// CreateSchema is a validated input shape that produces a new model value
// with defaults applied.
type CreateSchema[M any] interface {
	Validate() error
	Model() M
}

// UpdateSchema is a partial-update shape yielding only the explicitly
// supplied column assignments.
type UpdateSchema interface {
	Changes() (map[string]any, error)
}

// ResourceHandler serves the uniform CRUD surface of one resource. All four
// resources share this implementation; only the schemas, the store and the
// allowed list filters differ.
type ResourceHandler[C CreateSchema[M], U UpdateSchema, M any] struct {
	name    string
	store   repository.Store[M]
	filters []string // query parameters usable as exact-match list filters
}

func NewResourceHandler[C CreateSchema[M], U UpdateSchema, M any](name string, store repository.Store[M], filters ...string) *ResourceHandler[C, U, M] {
	return &ResourceHandler[C, U, M]{name: name, store: store, filters: filters}
}

// Register mounts the five CRUD routes under prefix.
func (h *ResourceHandler[C, U, M]) Register(r *mux.Router, prefix string) {
	s := r.PathPrefix(prefix).Subrouter()
	s.HandleFunc("", h.Create).Methods(http.MethodPost)
	s.HandleFunc("", h.List).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.Update).Methods(http.MethodPatch)
	s.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *ResourceHandler[C, U, M]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	out, err := h.store.Create(r.Context(), req.Model())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *ResourceHandler[C, U, M]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *ResourceHandler[C, U, M]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := repository.Page{Limit: defaultListLimit}
	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, apperr.Validationf("skip", "must be a non-negative integer"))
			return
		}
		page.Offset = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, apperr.Validationf("limit", "must be a positive integer"))
			return
		}
		page.Limit = min(n, maxListLimit)
	}

	filter := repository.Filter{}
	for _, col := range h.filters {
		if v := q.Get(col); v != "" {
			filter[col] = parseFilterValue(v)
		}
	}

	out, err := h.store.List(r.Context(), page, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *ResourceHandler[C, U, M]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req U
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	changes, err := req.Changes()
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.store.Update(r.Context(), id, changes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *ResourceHandler[C, U, M]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": h.name + " deleted"}, http.StatusOK)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			return apperr.Validationf(ute.Field, "invalid value of type %s", ute.Value)
		}
		return apperr.Validationf("body", "invalid request body")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validationf("id", "must be a positive integer")
	}
	return id, nil
}

// parseFilterValue keeps filter matching typed: booleans and integers
// compare against their column representation, everything else is a string.
func parseFilterValue(v string) any {
	if lo.Contains([]string{"true", "false"}, v) {
		return v == "true"
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	return v
}
