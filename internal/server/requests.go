package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/towaplating/cms/internal/repositories"
)

var errMalformedBody = errors.New("malformed request body")

func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errMalformedBody
	}
	return s.validate.Struct(v)
}

func parsePageRequest(r *http.Request) repositories.PageRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return repositories.PageRequest{Page: page, Limit: limit}
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// parseFilters maps query parameters onto column equality filters.
// Boolean literals are converted so they match sqlite's storage format.
func parseFilters(r *http.Request, spec map[string]string) map[string]any {
	filters := map[string]any{}
	for param, column := range spec {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		switch raw {
		case "true":
			filters[column] = true
		case "false":
			filters[column] = false
		default:
			filters[column] = raw
		}
	}
	return filters
}
