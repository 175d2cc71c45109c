package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/service"
)

// multipartMemory is how much of a parsed multipart form is held in memory
// before spilling to temp files. The overall request size is capped by the
// max-body-size middleware, not here.
const multipartMemory = 4 << 20

// ListClubs handles GET /clubs.
func (s *Server) ListClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := s.clubs.List(r.Context())
	if err != nil {
		respondError(w, err, "")
		return
	}
	respondJSON(w, http.StatusOK, clubs)
}

// GetClub handles GET /clubs/{id}.
func (s *Server) GetClub(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondRequestError(w, "invalid club id")
		return
	}

	agg, err := s.clubs.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "club not found")
		return
	}
	respondJSON(w, http.StatusOK, agg)
}

// CreateClub handles POST /clubs.
// The request is a multipart form: scalar fields arrive as plain values, the
// association fields (tags, major_ids, major_notes) as stringified JSON.
// A malformed JSON field is treated as absent, never as an error.
func (s *Server) CreateClub(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		respondRequestError(w, "multipart form body is required")
		return
	}

	nc := domain.NewClub{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Website:     r.FormValue("website"),
		Slug:        r.FormValue("slug"),
		IsActive:    true,
	}
	if v := r.FormValue("is_active"); v != "" {
		nc.IsActive = v == "true" || v == "1"
	}
	if v := r.FormValue("display_order"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			nc.DisplayOrder = n
		}
	}
	if v := r.FormValue("tags"); v != "" {
		var tags []string
		if json.Unmarshal([]byte(v), &tags) == nil {
			nc.Tags = tags
		}
	}
	if v := r.FormValue("major_ids"); v != "" {
		var ids []uuid.UUID
		if json.Unmarshal([]byte(v), &ids) == nil {
			nc.MajorIDs = ids
		}
	}
	if v := r.FormValue("major_notes"); v != "" {
		var notes map[uuid.UUID]string
		if json.Unmarshal([]byte(v), &notes) == nil {
			nc.MajorNotes = notes
		}
	}

	agg, err := s.clubs.Create(r.Context(), nc)
	if err != nil {
		respondError(w, err, "club not found")
		return
	}
	respondJSON(w, http.StatusCreated, agg)
}

// clubPatchRequest is the JSON wire shape for PATCH /clubs/{id}.
// Every field is a pointer so absence and explicit empty values stay distinct:
// `"tags": []` clears all tags, while omitting tags leaves them untouched.
type clubPatchRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Website      *string `json:"website"`
	Slug         *string `json:"slug"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`

	Tags       *[]string             `json:"tags"`
	MajorIDs   *[]uuid.UUID          `json:"major_ids"`
	MajorNotes *map[uuid.UUID]string `json:"major_notes"`
}

// UpdateClub handles PATCH /clubs/{id}.
func (s *Server) UpdateClub(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondRequestError(w, "invalid club id")
		return
	}

	var req clubPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondRequestError(w, "invalid JSON body")
		return
	}

	agg, err := s.clubs.Update(r.Context(), id, domain.ClubPatch{
		Name:         req.Name,
		Description:  req.Description,
		Website:      req.Website,
		Slug:         req.Slug,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
		Tags:         req.Tags,
		MajorIDs:     req.MajorIDs,
		MajorNotes:   req.MajorNotes,
	})
	if err != nil {
		respondError(w, err, "club not found")
		return
	}
	respondJSON(w, http.StatusOK, agg)
}

// DeleteClub handles DELETE /clubs/{id}.
func (s *Server) DeleteClub(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondRequestError(w, "invalid club id")
		return
	}

	if err := s.clubs.Delete(r.Context(), id); err != nil {
		respondError(w, err, "club not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadLogo handles POST /clubs/{slug}/logo.
func (s *Server) UploadLogo(w http.ResponseWriter, r *http.Request) {
	s.uploadAsset(w, r, service.AssetLogo, "logo_url")
}

// UploadBanner handles POST /clubs/{slug}/banner.
func (s *Server) UploadBanner(w http.ResponseWriter, r *http.Request) {
	s.uploadAsset(w, r, service.AssetBanner, "banner_url")
}

// uploadAsset reads the "file" multipart field and hands it to the service,
// which validates size and content type and returns the stored public URL.
func (s *Server) uploadAsset(w http.ResponseWriter, r *http.Request, role service.AssetRole, urlKey string) {
	slug := chi.URLParam(r, "slug")

	file, header, err := r.FormFile("file")
	if err != nil {
		respondRequestError(w, "file field is required")
		return
	}
	defer file.Close()

	url, err := s.clubs.UploadAsset(r.Context(), slug, role, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(w, err, "club not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{urlKey: url})
}
