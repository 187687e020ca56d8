package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStrategy struct {
	name  string
	url   string
	err   error
	calls int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Upload(context.Context, File, string) (string, error) {
	f.calls++
	return f.url, f.err
}

func TestCheckImage(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		ok          bool
	}{
		{"png", "panel.png", "image/png", true},
		{"upper jpeg", "PHOTO.JPEG", "image/jpeg", true},
		{"webp", "a.webp", "image/webp", true},
		{"text file", "notes.txt", "text/plain", false},
		{"image ext with text mime", "fake.png", "text/plain", false},
		{"image mime with text ext", "fake.txt", "image/png", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckImage(tt.filename, tt.contentType)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotImage)
			}
		})
	}
}

func TestResolverFallsThroughInOrder(t *testing.T) {
	cld := &fakeStrategy{name: "cloudinary", err: errors.New("401 invalid signature")}
	blob := &fakeStrategy{name: "blob", url: "https://blob.test/hassan-elec/services/a.png"}
	local := &fakeStrategy{name: "local", url: "/uploads/image-1.png"}

	r := NewResolver(cld, blob, local)
	url, err := r.Save(context.Background(), File{Filename: "a.png"}, "services")
	require.NoError(t, err)
	assert.Equal(t, "https://blob.test/hassan-elec/services/a.png", url)
	assert.Equal(t, 1, cld.calls)
	assert.Equal(t, 1, blob.calls)
	assert.Equal(t, 0, local.calls)
	assert.Equal(t, []string{"cloudinary", "blob", "local"}, r.Names())
}

func TestResolverAllFail(t *testing.T) {
	r := NewResolver(&fakeStrategy{name: "blob", err: errors.New("timeout")}, &fakeStrategy{name: "local", err: errors.New("disk full")})
	_, err := r.Save(context.Background(), File{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blob: timeout")
	assert.Contains(t, err.Error(), "local: disk full")
}

func TestLocalStrategy(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStrategy(dir)
	require.NoError(t, err)

	url, err := s.Upload(context.Background(), File{Field: "image", Filename: "Panel.PNG", Data: []byte("png")}, "services")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/image-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, PublicPrefix)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestBlobStrategy(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("x-content-type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://store.public.blob.test/hassan-elec/requests/x.png","pathname":"hassan-elec/requests/x.png"}`))
	}))
	defer srv.Close()

	s := NewBlobStrategy("vercel_blob_rw_token", srv.URL)
	url, err := s.Upload(context.Background(), File{Filename: "x.png", ContentType: "image/png", Data: []byte("img")}, "requests")
	require.NoError(t, err)
	assert.Equal(t, "https://store.public.blob.test/hassan-elec/requests/x.png", url)
	assert.True(t, strings.HasPrefix(gotPath, "/hassan-elec/requests/"))
	assert.True(t, strings.HasSuffix(gotPath, ".png"))
	assert.Equal(t, "Bearer vercel_blob_rw_token", gotAuth)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, []byte("img"), gotBody)
}

func TestBlobStrategyErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"forbidden"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewBlobStrategy("bad", srv.URL).Upload(context.Background(), File{ContentType: "image/png"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func multipartRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSaveFormFile(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocalStrategy(dir)
	require.NoError(t, err)
	r := NewResolver(local)

	app := fiber.New()
	app.Post("/upload", func(c fiber.Ctx) error {
		url, err := r.SaveFormFile(c, "image", "requests")
		if err != nil {
			return c.Status(http.StatusBadRequest).SendString(err.Error())
		}
		return c.SendString(url)
	})

	resp, err := app.Test(multipartRequest(t, "image", "notes.txt", "text/plain", []byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Only image files are allowed!", string(body))

	resp, err = app.Test(multipartRequest(t, "image", "wire.jpg", "image/jpeg", []byte("jpg")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "/uploads/image-"))
}

func TestReadFileTooLarge(t *testing.T) {
	app := fiber.New(fiber.Config{BodyLimit: 2 * MaxFileSize})
	app.Post("/upload", func(c fiber.Ctx) error {
		form, err := c.MultipartForm()
		require.NoError(t, err)
		_, err = ReadFile("image", form.File["image"][0])
		if errors.Is(err, ErrTooLarge) {
			return c.SendStatus(http.StatusRequestEntityTooLarge)
		}
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(multipartRequest(t, "image", "big.png", "image/png", make([]byte, MaxFileSize+1)), fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}
