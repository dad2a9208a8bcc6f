package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/repositories"
)

func createService(t *testing.T, env *testEnv, title string, published bool) entities.Service {
	t.Helper()
	resp := env.do(t, http.MethodPost, "/api/services", env.adminToken, map[string]any{
		"title":       title,
		"features":    []string{"耐摩耗性"},
		"isPublished": published,
	})
	require.Equal(t, http.StatusCreated, resp.status)
	return decodeData[entities.Service](t, resp)
}

func Test_ResourceAPI_Create_ShouldPersistJsonColumns(t *testing.T) {

	env := newTestEnv(t)

	created := createService(t, env, "硬質クロムめっき", true)

	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/services/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusOK, resp.status)
	fetched := decodeData[entities.Service](t, resp)
	assert.Equal(t, "硬質クロムめっき", fetched.Title)
	assert.Equal(t, []string{"耐摩耗性"}, fetched.Features)
}

func Test_ResourceAPI_List_WithBooleanFilter_ShouldMatchOnly(t *testing.T) {

	env := newTestEnv(t)
	createService(t, env, "公開サービス", true)
	createService(t, env, "非公開サービス", false)

	resp := env.do(t, http.MethodGet, "/api/services?published=true", "", nil)

	page := decodeData[repositories.Page[entities.Service]](t, resp)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "公開サービス", page.Items[0].Title)
}

func Test_ResourceAPI_Update_ShouldIgnoreBodyID(t *testing.T) {

	env := newTestEnv(t)
	created := createService(t, env, "旧名称", true)

	resp := env.do(t, http.MethodPut, fmt.Sprintf("/api/services/%d", created.ID), env.adminToken,
		map[string]any{"id": 999, "title": "新名称", "isPublished": true})

	assert.Equal(t, http.StatusOK, resp.status)
	updated := decodeData[entities.Service](t, resp)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "新名称", updated.Title)

	count, err := env.repos.Services.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func Test_ResourceAPI_Delete_AsEditor_ShouldBeForbidden(t *testing.T) {

	env := newTestEnv(t)
	created := createService(t, env, "削除対象", true)

	resp := env.do(t, http.MethodDelete, fmt.Sprintf("/api/services/%d", created.ID), env.editorToken, nil)

	assert.Equal(t, http.StatusForbidden, resp.status)
}

func Test_ResourceAPI_Get_WhenMissing_ShouldReturnNotFound(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/equipment/42", "", nil)

	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.Equal(t, codeNotFound, resp.err.Code)
}

func Test_ResourceAPI_Get_WithMalformedID_ShouldReturnValidationError(t *testing.T) {

	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/events/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}
