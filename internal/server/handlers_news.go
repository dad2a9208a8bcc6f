package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/repositories"
)

func (s *Server) mountNews(r chi.Router) {
	r.Get("/news", s.handleListNews)
	r.Get("/news/{id}", s.handleGetNews)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireRole(entities.RoleAdmin))
		r.Post("/news", s.handleCreateNews)
		r.Post("/news/assist", s.handleAssistNews)
		r.Put("/news/{id}", s.handleUpdateNews)
		r.Delete("/news/{id}", s.handleDeleteNews)
	})
}

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r, map[string]string{
		"status":   "status",
		"category": "category",
	})

	page, err := s.repos.News.List(r.Context(), parsePageRequest(r), filters)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, page)
}

// The public detail view is the view counter: every fetch bumps views.
func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	item, err := s.repos.News.GetAndCountView(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "お知らせが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, item)
}

func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	var item entities.News
	if err := s.decodeAndValidate(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
		return
	}

	if item.Status == "" {
		item.Status = entities.NewsDraft
	} else if _, err := entities.ToNewsStatus(string(item.Status)); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "ステータスが不正です")
		return
	}

	item.Views = 0
	if err := s.repos.News.Create(r.Context(), &item); err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	item, err := s.repos.News.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "お知らせが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}

	views := item.Views
	if err = s.decodeAndValidate(r, item); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
		return
	}
	if _, err = entities.ToNewsStatus(string(item.Status)); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "ステータスが不正です")
		return
	}
	item.ID = id
	item.Views = views

	if err = s.repos.News.Save(r.Context(), item); err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, item)
}

func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	err = s.repos.News.Delete(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "お知らせが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}

type assistRequest struct {
	Topic string `json:"topic" validate:"required"`
}

func (s *Server) handleAssistNews(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		writeError(w, http.StatusBadRequest, codeAiDisabled, "AIアシスタントは無効になっています")
		return
	}

	var req assistRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "テーマを入力してください")
		return
	}

	draft, err := s.assistant.DraftNews(r.Context(), req.Topic)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, draft)
}
