package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/towaplating/cms/internal/entities"
)

func (s *Server) mountHomepageSections(r chi.Router) {
	r.Get("/homepage-sections", s.handleListHomepageSections)
	r.With(s.requireAuth, s.requireRole(entities.RoleAdmin)).
		Put("/homepage-sections", s.handleUpsertHomepageSections)
}

func (s *Server) handleListHomepageSections(w http.ResponseWriter, r *http.Request) {
	sections, err := s.repos.HomepageSections.GetAll(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, sections)
}

// PUT takes the whole section array and upserts each entry by its
// sectionId; unknown ids are created, known ids updated in place.
func (s *Server) handleUpsertHomepageSections(w http.ResponseWriter, r *http.Request) {
	var sections []entities.HomepageSection
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&sections); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "セクションの形式が不正です")
		return
	}

	for i := range sections {
		if sections[i].SectionID == "" {
			writeError(w, http.StatusBadRequest, codeValidation, "sectionIdは必須です")
			return
		}
		if _, err := sections[i].DecodeContent(); err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "セクション内容の形式が不正です")
			return
		}
		// storage ids come from section_id matching, never from the body
		sections[i].ID = 0
	}

	result, err := s.repos.HomepageSections.Upsert(r.Context(), sections)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, result)
}
