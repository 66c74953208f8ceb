package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"droscher.com/Foodgram/pkg/repository"
)

func (s *Server) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := s.repo.ListIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, ingredientsFromModel(ingredients))
}

func (s *Server) GetIngredient(w http.ResponseWriter, r *http.Request) {
	ingredientID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	ingredient, err := s.repo.GetIngredientByID(r.Context(), ingredientID)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, ingredientFromModel(*ingredient))
}

func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.repo.ListTags(r.Context())
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, tagsFromModel(tags))
}

func (s *Server) GetTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	tag, err := s.repo.GetTagByID(r.Context(), tagID)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, tagFromModel(*tag))
}

// pathID parses the {id} route parameter. Non-numeric ids are reported as not
// found, like any other unknown id.
func pathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid id %q", repository.ErrNotFound, raw)
	}

	return uint(id), nil
}
