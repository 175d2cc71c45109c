package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/betterbobcats/backend/internal/catalog"
)

// ListCourses handles GET /courses.
func (s *Server) ListCourses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Courses)
}

// GetCourse handles GET /courses/{id}.
func (s *Server) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := catalog.CourseByID(chi.URLParam(r, "id"))
	if !ok {
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: "course not found"},
		})
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// GetCourseGraph handles GET /courses/graph.
// The graph wrapper shape is what prerequisite-visualization clients expect.
func (s *Server) GetCourseGraph(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.CourseGraph{Courses: catalog.Courses})
}

// ListCareerPaths handles GET /careers.
func (s *Server) ListCareerPaths(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"paths": catalog.CareerPathIDs()})
}

// GetCareerPath handles GET /careers/{path}.
func (s *Server) GetCareerPath(w http.ResponseWriter, r *http.Request) {
	path, ok := catalog.CareerPathByID(chi.URLParam(r, "path"))
	if !ok {
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: "career path not found"},
		})
		return
	}
	respondJSON(w, http.StatusOK, path)
}
