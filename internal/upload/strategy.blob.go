package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// DefaultBlobBaseURL là endpoint API của Vercel Blob
const DefaultBlobBaseURL = "https://blob.vercel-storage.com"

// BlobStrategy upload ảnh lên Vercel Blob (public access) qua HTTP PUT
type BlobStrategy struct {
	token   string
	baseURL string
	client  *fasthttp.Client
	timeout time.Duration
}

// NewBlobStrategy tạo strategy với read-write token. baseURL rỗng thì dùng DefaultBlobBaseURL.
func NewBlobStrategy(token, baseURL string) *BlobStrategy {
	if baseURL == "" {
		baseURL = DefaultBlobBaseURL
	}
	return &BlobStrategy{
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &fasthttp.Client{Name: "hassan-elec"},
		timeout: 30 * time.Second,
	}
}

// Name implement Strategy
func (s *BlobStrategy) Name() string { return "blob" }

type blobPutResponse struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

// Upload implement Strategy
func (s *BlobStrategy) Upload(ctx context.Context, file File, folder string) (string, error) {
	ext := "jpg"
	if parts := strings.SplitN(file.ContentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}
	pathname := remoteFolder(folder) + "/" + uniqueName("", "."+ext)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.baseURL + "/" + pathname)
	req.Header.SetMethod(fasthttp.MethodPut)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("x-api-version", "7")
	req.Header.Set("x-content-type", file.ContentType)
	req.Header.Set("x-add-random-suffix", "1")
	req.SetBody(file.Data)

	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		return "", fmt.Errorf("blob put: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("blob put: status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var out blobPutResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("blob put: decode response: %w", err)
	}
	if out.URL == "" {
		return "", errors.New("blob put: response has no url")
	}
	return out.URL, nil
}
