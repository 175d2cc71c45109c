package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// majorRequest is the JSON wire shape for major create and rename.
type majorRequest struct {
	Name string `json:"name"`
}

// ListMajors handles GET /majors.
func (s *Server) ListMajors(w http.ResponseWriter, r *http.Request) {
	majors, err := s.majors.List(r.Context())
	if err != nil {
		respondError(w, err, "")
		return
	}
	respondJSON(w, http.StatusOK, majors)
}

// CreateMajor handles POST /majors.
func (s *Server) CreateMajor(w http.ResponseWriter, r *http.Request) {
	var req majorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondRequestError(w, "invalid JSON body")
		return
	}

	major, err := s.majors.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, err, "")
		return
	}
	respondJSON(w, http.StatusCreated, major)
}

// RenameMajor handles PATCH /majors/{id}.
func (s *Server) RenameMajor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondRequestError(w, "invalid major id")
		return
	}

	var req majorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondRequestError(w, "invalid JSON body")
		return
	}

	major, err := s.majors.Rename(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, err, "major not found")
		return
	}
	respondJSON(w, http.StatusOK, major)
}

// DeleteMajor handles DELETE /majors/{id}.
// Returns 409 while any club still links to the major.
func (s *Server) DeleteMajor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondRequestError(w, "invalid major id")
		return
	}

	if err := s.majors.Delete(r.Context(), id); err != nil {
		respondError(w, err, "major not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
