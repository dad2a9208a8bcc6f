package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// File describes an asset hosted by the media service.
type File struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type uploadResponse struct {
	File File `json:"file"`
}

// Client is a thin pass-through to the external media host. The host's
// API is treated as opaque: bytes in, hosted URL out.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) Upload(ctx context.Context, filename, contentType string, data io.Reader) (*File, error) {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(part, data); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	body, err := c.sendRequest(ctx, http.MethodPost, c.baseURL+"/upload", writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var response uploadResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %w", err)
	}

	return &response.File, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, c.baseURL+"/files/"+id, "", nil)
	return err
}

func (c *Client) sendRequest(ctx context.Context, method, url, contentType string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("media host returned %v: %s", resp.Status, string(responseBody))
	}

	return responseBody, nil
}
