package server

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/towaplating/cms/internal/clients/media"
)

func newTestEnvWithMediaHost(t *testing.T, resp *http.Response) *testEnv {
	t.Helper()
	mediaClient := media.NewClient("https://media.example.com", "key")
	mediaClient.SetHTTPClient(&stubHTTPClient{resp: resp})
	return newTestEnvWithMedia(t, mediaClient)
}

func Test_Upload_WithFormKind_ShouldForwardToMediaHost(t *testing.T) {

	env := newTestEnvWithMediaHost(t, stubResponse(200,
		`{"file":{"id":"doc1","url":"https://media.example.com/f/doc1.txt","size":5,"contentType":"text/plain"}}`))

	resp := env.doMultipart(t, "/api/upload", env.adminToken,
		map[string]string{"type": "document"},
		"file", "notes.txt", "text/plain", []byte("hello"))

	assert.Equal(t, http.StatusCreated, resp.status)
	file := decodeData[media.File](t, resp)
	assert.Equal(t, "https://media.example.com/f/doc1.txt", file.URL)
}

func Test_Upload_WithUnknownKind_ShouldReject(t *testing.T) {

	env := newTestEnvWithMediaHost(t, nil)

	resp := env.doMultipart(t, "/api/upload", env.adminToken,
		map[string]string{"type": "video"},
		"file", "clip.mp4", "video/mp4", []byte("x"))

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}

func Test_Upload_WithDisallowedContentType_ShouldReject(t *testing.T) {

	env := newTestEnvWithMediaHost(t, nil)

	resp := env.doMultipart(t, "/api/upload/image", env.adminToken, nil,
		"file", "archive.zip", "application/zip", []byte("x"))

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}

func Test_Upload_WithOversizedFile_ShouldReject(t *testing.T) {

	env := newTestEnvWithMediaHost(t, nil)

	oversized := bytes.Repeat([]byte("a"), 5<<20+1)
	resp := env.doMultipart(t, "/api/upload/image", env.adminToken, nil,
		"file", "huge.png", "image/png", oversized)

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}

func Test_Upload_WithoutFile_ShouldReject(t *testing.T) {

	env := newTestEnvWithMediaHost(t, nil)

	resp := env.doMultipart(t, "/api/upload", env.adminToken,
		map[string]string{"type": "image"}, "", "", "", nil)

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, codeValidation, resp.err.Code)
}
