package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/towaplating/cms/internal/auth"
	"github.com/towaplating/cms/internal/entities"
)

func (s *Server) mountSettings(r chi.Router) {
	r.Get("/company", s.handleGetCompany)
	r.With(s.requireAuth, s.requireRole(entities.RoleAdmin)).
		Put("/company", s.handleUpdateCompany)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/settings", s.handleGetSettings)
		r.With(s.requireRole(entities.RoleAdmin)).Put("/settings", s.handleUpdateSettings)
		r.Post("/settings/password", s.handleChangePassword)
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.repos.Settings.Get(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings entities.Settings
	if err := s.decodeAndValidate(r, &settings); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
		return
	}

	if err := s.repos.Settings.Update(r.Context(), &settings); err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, settings)
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := s.repos.Company.Get(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, company)
}

func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var company entities.Company
	if err := s.decodeAndValidate(r, &company); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
		return
	}

	if err := s.repos.Company.Update(r.Context(), &company); err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, company)
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordChangeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "新しいパスワードは8文字以上で入力してください")
		return
	}

	claims := claimsFromContext(r.Context())
	user, err := s.repos.Users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "認証情報が無効です")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		writeError(w, http.StatusUnauthorized, codeInvalidCredentials, "現在のパスワードが違います")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		writeServerError(w, err)
		return
	}

	if err = s.repos.Users.UpdatePasswordHash(r.Context(), user.ID, hash); err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"changed": true})
}
