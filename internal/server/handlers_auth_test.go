package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/towaplating/cms/internal/entities"
)

func Test_Login_WithValidCredentials_ShouldReturnTokenAndUser(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testPassword,
	})

	assert.Equal(t, http.StatusOK, resp.status)
	assert.True(t, resp.success)

	data := decodeData[struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}](t, resp)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, testAdminEmail, data.User.Email)
	assert.Equal(t, entities.RoleAdmin, data.User.Role)
}

func Test_Login_WithMixedCaseEmail_ShouldSucceed(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "Admin@Example.COM",
		"password": testPassword,
	})

	assert.Equal(t, http.StatusOK, resp.status)
	assert.True(t, resp.success)
}

func Test_Login_WithWrongPassword_ShouldReturnInvalidCredentials(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.False(t, resp.success)
	assert.Equal(t, codeInvalidCredentials, resp.err.Code)
}

func Test_Login_WithUnknownEmail_ShouldReturnSameErrorAsWrongPassword(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": testPassword,
	})

	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.Equal(t, codeInvalidCredentials, resp.err.Code)
}

func Test_Login_WithMalformedBody_ShouldReturnValidationError(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}

func Test_Me_WithValidToken_ShouldReturnCurrentUser(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/auth/me", env.editorToken, nil)

	assert.Equal(t, http.StatusOK, resp.status)
	user := decodeData[entities.User](t, resp)
	assert.Equal(t, testEditorEmail, user.Email)
	assert.Equal(t, entities.RoleEditor, user.Role)
}

func Test_Me_WithoutToken_ShouldReturnUnauthorized(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/auth/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.Equal(t, codeUnauthorized, resp.err.Code)
}

func Test_Me_WithGarbageToken_ShouldReturnInvalidToken(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.Equal(t, codeInvalidToken, resp.err.Code)
}
