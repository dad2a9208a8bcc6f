package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/towaplating/cms/internal/entities"
)

func submitInquiry(t *testing.T, env *testEnv) entities.Inquiry {
	t.Helper()
	resp := env.do(t, http.MethodPost, "/api/inquiries", "", map[string]string{
		"name":    "山田太郎",
		"email":   "yamada@example.com",
		"service": "亜鉛めっき",
		"message": "見積もりをお願いします",
	})
	assert.Equal(t, http.StatusCreated, resp.status)
	return decodeData[entities.Inquiry](t, resp)
}

func Test_CreateInquiry_ShouldStartUnread(t *testing.T) {

	env := newTestEnv(t)

	inquiry := submitInquiry(t, env)

	assert.NotZero(t, inquiry.ID)
	assert.Equal(t, entities.InquiryUnread, inquiry.Status)
}

func Test_CreateInquiry_WithoutMessage_ShouldReturnValidationError(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/inquiries", "", map[string]string{
		"name":  "山田太郎",
		"email": "yamada@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}

func Test_GetInquiry_ShouldMarkUnreadAsInProgress(t *testing.T) {

	env := newTestEnv(t)
	inquiry := submitInquiry(t, env)

	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/inquiries/%d", inquiry.ID), env.adminToken, nil)

	assert.Equal(t, http.StatusOK, resp.status)
	fetched := decodeData[entities.Inquiry](t, resp)
	assert.Equal(t, entities.InquiryInProgress, fetched.Status)
}

func Test_UpdateInquiryStatus_ShouldPersist(t *testing.T) {

	env := newTestEnv(t)
	inquiry := submitInquiry(t, env)

	target := fmt.Sprintf("/api/inquiries/%d/status", inquiry.ID)
	resp := env.do(t, http.MethodPatch, target, env.adminToken, map[string]string{"status": "resolved"})

	assert.Equal(t, http.StatusOK, resp.status)
	updated := decodeData[entities.Inquiry](t, resp)
	assert.Equal(t, entities.InquiryResolved, updated.Status)
}

func Test_InquiryAdminEndpoints_AsEditor_ShouldBeForbidden(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/inquiries", env.editorToken, nil)

	assert.Equal(t, http.StatusForbidden, resp.status)
	assert.Equal(t, codeForbidden, resp.err.Code)
}
