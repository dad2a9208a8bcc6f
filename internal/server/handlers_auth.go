package server

import (
	"net/http"
	"strings"

	"github.com/towaplating/cms/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "メールアドレスとパスワードを入力してください")
		return
	}

	user, err := s.repos.Users.GetByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		// one failure path for unknown email and wrong password alike
		writeError(w, http.StatusUnauthorized, codeInvalidCredentials, "メールアドレスまたはパスワードが違います")
		return
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// Tokens are stateless; logout exists so clients have a uniform call.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]any{"loggedOut": true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	user, err := s.repos.Users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "認証情報が無効です")
		return
	}
	writeSuccess(w, http.StatusOK, user)
}
