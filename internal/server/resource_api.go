package server

import (
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/repositories"
)

// resourceAPI wires the standard five CRUD routes for one catalog
// entity: public reads, admin-only writes. Resources needing extra
// behavior (news, inquiries, applications) get hand-written handlers.
type resourceAPI[T any] struct {
	server  *Server
	repo    *repositories.Resource[T]
	path    string
	filters map[string]string
}

func newResourceAPI[T any](s *Server, repo *repositories.Resource[T], path string, filters map[string]string) *resourceAPI[T] {
	return &resourceAPI[T]{server: s, repo: repo, path: path, filters: filters}
}

func (api *resourceAPI[T]) mount(r chi.Router) {
	r.Get(api.path, api.list)
	r.Get(api.path+"/{id}", api.get)

	r.Group(func(r chi.Router) {
		r.Use(api.server.requireAuth, api.server.requireRole(entities.RoleAdmin))
		r.Post(api.path, api.create)
		r.Put(api.path+"/{id}", api.update)
		r.Delete(api.path+"/{id}", api.delete)
	})
}

func (api *resourceAPI[T]) list(w http.ResponseWriter, r *http.Request) {
	page, err := api.repo.List(r.Context(), parsePageRequest(r), parseFilters(r, api.filters))
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, page)
}

func (api *resourceAPI[T]) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	item, err := api.repo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "指定されたデータが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, item)
}

func (api *resourceAPI[T]) create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := api.server.decodeAndValidate(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
		return
	}

	if err := api.repo.Create(r.Context(), &item); err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, item)
}

func (api *resourceAPI[T]) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	item, err := api.repo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "指定されたデータが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}

	if err = api.server.decodeAndValidate(r, item); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
		return
	}
	setID(item, id)

	if err = api.repo.Save(r.Context(), item); err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, item)
}

func (api *resourceAPI[T]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	err = api.repo.Delete(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "指定されたデータが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}

// setID restores the path id after a decode so a body carrying a
// different id can never redirect the write.
func setID(item any, id uint) {
	value := reflect.ValueOf(item).Elem().FieldByName("ID")
	if value.IsValid() && value.CanSet() && value.Kind() == reflect.Uint {
		value.SetUint(uint64(id))
	}
}
