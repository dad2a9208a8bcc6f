package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/towaplating/cms/internal/domain/events"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/metrics"
	"github.com/towaplating/cms/internal/repositories"
)

func (s *Server) mountInquiries(r chi.Router) {
	r.With(s.limitPublicForms).Post("/inquiries", s.handleCreateInquiry)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireRole(entities.RoleAdmin))
		r.Get("/inquiries", s.handleListInquiries)
		r.Get("/inquiries/{id}", s.handleGetInquiry)
		r.Patch("/inquiries/{id}/status", s.handleUpdateInquiryStatus)
	})
}

type inquiryRequest struct {
	CompanyName string `json:"companyName"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	Message     string `json:"message" validate:"required"`
}

func (s *Server) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "入力内容に誤りがあります")
		return
	}

	inquiry := entities.Inquiry{
		CompanyName: req.CompanyName,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		Message:     req.Message,
		Status:      entities.InquiryUnread,
	}

	if err := s.repos.Inquiries.Create(r.Context(), &inquiry); err != nil {
		writeServerError(w, err)
		return
	}

	metrics.SubmissionsCounter.WithLabelValues("inquiry").Inc()
	s.bus.Publish(events.InquiryReceivedTopic, events.InquiryReceived{Inquiry: inquiry})

	writeSuccess(w, http.StatusCreated, inquiry)
}

func (s *Server) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r, map[string]string{"status": "status"})

	page, err := s.repos.Inquiries.List(r.Context(), parsePageRequest(r), filters)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, page)
}

func (s *Server) handleGetInquiry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	inquiry, err := s.repos.Inquiries.GetAndMarkRead(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "お問い合わせが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, inquiry)
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleUpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "IDの形式が不正です")
		return
	}

	var req inquiryStatusRequest
	if err = s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "ステータスを指定してください")
		return
	}

	status, err := entities.ToInquiryStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "ステータスが不正です")
		return
	}

	inquiry, err := s.repos.Inquiries.UpdateStatus(r.Context(), id, status)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "お問い合わせが見つかりません")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, inquiry)
}
