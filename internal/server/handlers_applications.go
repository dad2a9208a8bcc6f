package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/towaplating/cms/internal/domain/events"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/logger"
	"github.com/towaplating/cms/internal/metrics"
	"github.com/towaplating/cms/internal/repositories"
)

const maxResumeSize = 10 << 20

func (s *Server) mountApplications(r chi.Router) {
	r.With(s.limitPublicForms).Post("/applications", s.handleCreateApplication)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireRole(entities.RoleAdmin))
		r.Get("/applications", s.handleListApplications)
		r.Get("/applications/{id}", s.handleGetApplication)
		r.Patch("/applications/{id}/status", s.handleUpdateApplicationStatus)
	})
}

type applicationRequest struct {
	Position   string `json:"position" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Age        int    `json:"age" validate:"gte=15,lte=99"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Experience string `json:"experience"`
	Motivation string `json:"motivation"`
}

// Submissions arrive as JSON, or as multipart form data when a resume
// file is attached.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	var resumeURL string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxResumeSize + 1<<20); err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "フォームの形式が不正です")
			return
		}

		age, _ := strconv.Atoi(r.FormValue("age"))
		req = applicationRequest{
			Position:   r.FormValue("position"),
			Name:       r.FormValue("name"),
			Age:        age,
			Email:      r.FormValue("email"),
			Phone:      r.FormValue("phone"),
			Experience: r.FormValue("experience"),
			Motivation: r.FormValue("motivation"),
		}
		if err := s.validate.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
			return
		}

		resumeURL = s.uploadResume(r)
	} else {
		if err := s.decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
			return
		}
	}

	application := entities.Application{
		Position:   req.Position,
		Name:       req.Name,
		Age:        req.Age,
		Email:      req.Email,
		Phone:      req.Phone,
		Experience: req.Experience,
		Motivation: req.Motivation,
		ResumeURL:  resumeURL,
	}

	if err := s.repos.Applications.Create(r.Context(), &application); err != nil {
		writeServerError(w, err)
		return
	}

	metrics.SubmissionsCounter.WithLabelValues("application").Inc()
	s.bus.Publish(events.ApplicationReceivedTopic, events.ApplicationReceived{Application: application})

	writeSuccess(w, http.StatusCreated, application)
}

// uploadResume forwards the optional resume to the media host. Upload
// problems are logged and swallowed: the application itself must still
// be accepted.
func (s *Server) uploadResume(r *http.Request) string {
	file, header, err := r.FormFile("resume")
	if err != nil {
		return ""
	}
	defer file.Close()

	if s.media == nil || header.Size > maxResumeSize {
		log.Warnf("resume for %q skipped: client=%v size=%v", r.FormValue("name"), s.media != nil, header.Size)
		return ""
	}

	hosted, err := s.media.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeMediaApi).
			Warnf("failed to upload resume, application accepted without it: %v", err)
		return ""
	}
	return hosted.URL
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r, map[string]string{
		"status":   "status",
		"position": "position",
	})

	page, err := s.repos.Applications.List(r.Context(), parsePageRequest(r), filters)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, page)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	application, err := s.repos.Applications.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "応募が見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, application)
}

type applicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	var req applicationStatusRequest
	if err = s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "ステータスを指定してください")
		return
	}

	status, err := entities.ToApplicationStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "ステータスが不正です")
		return
	}

	application, err := s.repos.Applications.UpdateStatus(r.Context(), id, status)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "応募が見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, application)
}
