package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DashboardStats_ShouldCountUnreadSeparately(t *testing.T) {

	env := newTestEnv(t)
	submitInquiry(t, env)
	inquiry := submitInquiry(t, env)
	env.do(t, http.MethodGet, fmt.Sprintf("/api/inquiries/%d", inquiry.ID), env.adminToken, nil)

	resp := env.do(t, http.MethodGet, "/api/dashboard/stats", env.adminToken, nil)

	require.Equal(t, http.StatusOK, resp.status)
	stats := decodeData[dashboardStats](t, resp)
	assert.Equal(t, int64(2), stats.Inquiries)
	assert.Equal(t, int64(1), stats.UnreadInquiries)
}

func Test_DashboardRecent_ShouldListLatestSubmissions(t *testing.T) {

	env := newTestEnv(t)
	submitInquiry(t, env)
	submitApplication(t, env)

	resp := env.do(t, http.MethodGet, "/api/dashboard/recent", env.adminToken, nil)

	require.Equal(t, http.StatusOK, resp.status)
	recent := decodeData[struct {
		Inquiries    []recentInquiry     `json:"inquiries"`
		Applications []recentApplication `json:"applications"`
	}](t, resp)
	assert.Len(t, recent.Inquiries, 1)
	assert.Len(t, recent.Applications, 1)
	assert.Equal(t, "佐藤花子", recent.Applications[0].Name)
}

func Test_Dashboard_WithoutToken_ShouldBeUnauthorized(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/dashboard/stats", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.status)
}

func Test_Upload_WhenMediaDisabled_ShouldReturnValidationError(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/upload/image", env.adminToken, nil)

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}
