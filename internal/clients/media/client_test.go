package media

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func Test_MediaClient_Upload_ShouldReturnHostedFile(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost &&
			req.URL.String() == "https://media.example.com/upload" &&
			req.Header.Get("Authorization") == "Bearer key" &&
			strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data")
	})).Return(jsonResponse(200,
		`{"file":{"id":"abc","url":"https://media.example.com/f/abc.pdf","size":12,"contentType":"application/pdf"}}`), nil)

	client := NewClient("https://media.example.com", "key")
	client.SetHTTPClient(mockClient)

	file, err := client.Upload(context.Background(), "resume.pdf", "application/pdf", strings.NewReader("hello resume"))

	assert.NoError(t, err)
	assert.Equal(t, "abc", file.ID)
	assert.Equal(t, "https://media.example.com/f/abc.pdf", file.URL)
	assert.Equal(t, "application/pdf", file.ContentType)
	mockClient.AssertExpectations(t)
}

func Test_MediaClient_Upload_WhenHostFails_ShouldReturnError(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(jsonResponse(500, `oops`), nil)

	client := NewClient("https://media.example.com", "key")
	client.SetHTTPClient(mockClient)

	_, err := client.Upload(context.Background(), "a.png", "image/png", strings.NewReader("x"))

	assert.Error(t, err)
}

func Test_MediaClient_Delete_ShouldCallFilesEndpoint(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodDelete &&
			req.URL.String() == "https://media.example.com/files/abc"
	})).Return(jsonResponse(204, ``), nil)

	client := NewClient("https://media.example.com", "key")
	client.SetHTTPClient(mockClient)

	assert.NoError(t, client.Delete(context.Background(), "abc"))
	mockClient.AssertExpectations(t)
}
