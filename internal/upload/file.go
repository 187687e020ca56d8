// Package upload lưu ảnh upload theo danh sách strategy có thứ tự: cloudinary, blob, rồi local.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/zougmar/hassan-elec/internal/common"
)

// MaxFileSize là dung lượng tối đa của một file ảnh
const MaxFileSize = 5 * 1024 * 1024

// MaxProjectImages là số ảnh tối đa trong một request của project
const MaxProjectImages = 10

var allowedTypes = regexp.MustCompile(`jpeg|jpg|png|gif|webp`)

var (
	// ErrNotImage trả về khi extension hoặc MIME type không phải ảnh
	ErrNotImage = common.NewValidationError("Only image files are allowed!", nil)
	// ErrTooLarge trả về khi file vượt quá MaxFileSize
	ErrTooLarge = common.NewValidationError("File too large", nil)
)

// File là ảnh đã đọc vào bộ nhớ, sẵn sàng cho strategy
type File struct {
	Field       string // tên field form (image, images, photo)
	Filename    string // tên file gốc từ client
	ContentType string
	Data        []byte
}

// Ext trả về extension viết thường của tên file gốc, gồm dấu chấm
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Filename))
}

// CheckImage kiểm tra cả extension lẫn MIME type đều là ảnh được hỗ trợ
func CheckImage(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedTypes.MatchString(ext) || !allowedTypes.MatchString(strings.ToLower(contentType)) {
		return ErrNotImage
	}
	return nil
}

// ReadFile kiểm tra và đọc file từ multipart header
func ReadFile(field string, fh *multipart.FileHeader) (File, error) {
	contentType := fh.Header.Get("Content-Type")
	if err := CheckImage(fh.Filename, contentType); err != nil {
		return File{}, err
	}
	if fh.Size > MaxFileSize {
		return File{}, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return File{}, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	if len(data) > MaxFileSize {
		return File{}, ErrTooLarge
	}

	return File{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
