package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/towaplating/cms/internal/entities"
)

const maxUploadMemory = 11 << 20

type uploadRule struct {
	maxSize      int64
	allowedTypes []string
}

// Allow-list keyed by the caller-supplied upload kind.
var uploadRules = map[string]uploadRule{
	"image": {
		maxSize:      5 << 20,
		allowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	},
	"resume": {
		maxSize: 10 << 20,
		allowedTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
	},
	"document": {
		maxSize: 10 << 20,
		allowedTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
		},
	},
}

func (s *Server) mountUploads(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireRole(entities.RoleAdmin))
		r.Post("/upload", s.handleUpload(""))
		r.Post("/upload/image", s.handleUpload("image"))
	})
}

func (s *Server) handleUpload(fixedKind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.media == nil {
			writeError(w, http.StatusBadRequest, codeValidation, "メディアサーバーが設定されていません")
			return
		}

		// parse before reading the kind; FormValue would otherwise parse
		// the form itself with its own default bound
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "フォームの形式が不正です")
			return
		}

		kind := fixedKind
		if kind == "" {
			kind = r.FormValue("type")
		}
		rule, ok := uploadRules[kind]
		if !ok {
			writeError(w, http.StatusBadRequest, codeValidation, "アップロード種別が不正です")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "ファイルが指定されていません")
			return
		}
		defer file.Close()

		if header.Size > rule.maxSize {
			writeError(w, http.StatusBadRequest, codeValidation, "ファイルサイズが上限を超えています")
			return
		}

		contentType := header.Header.Get("Content-Type")
		if !lo.Contains(rule.allowedTypes, contentType) {
			writeError(w, http.StatusBadRequest, codeValidation, "このファイル形式はアップロードできません")
			return
		}

		hosted, err := s.media.Upload(r.Context(), header.Filename, contentType, file)
		if err != nil {
			writeServerError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, hosted)
	}
}
