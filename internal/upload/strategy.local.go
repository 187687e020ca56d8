package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// PublicPrefix là prefix URL phục vụ file local
const PublicPrefix = "/uploads/"

// LocalStrategy ghi file vào thư mục upload trên disk
type LocalStrategy struct {
	dir string
}

// NewLocalStrategy tạo strategy và đảm bảo thư mục tồn tại
func NewLocalStrategy(dir string) (*LocalStrategy, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &LocalStrategy{dir: dir}, nil
}

// Name implement Strategy
func (s *LocalStrategy) Name() string { return "local" }

// Dir trả về thư mục lưu file
func (s *LocalStrategy) Dir() string { return s.dir }

// Upload implement Strategy. Folder không dùng, mọi file nằm phẳng trong dir.
func (s *LocalStrategy) Upload(_ context.Context, file File, _ string) (string, error) {
	field := file.Field
	if field == "" {
		field = "file"
	}
	name := uniqueName(field, file.Ext())
	if err := os.WriteFile(filepath.Join(s.dir, name), file.Data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", name, err)
	}
	return PublicPrefix + name, nil
}
