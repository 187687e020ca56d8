package upload

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/zougmar/hassan-elec/config"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/logger"
)

// Resolver thử lần lượt các strategy theo thứ tự, strategy đầu tiên thành công được dùng.
// Mỗi lần thử đều được log. Không retry giữa các request.
type Resolver struct {
	strategies []Strategy
}

// NewResolver tạo resolver với danh sách strategy theo thứ tự ưu tiên
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// NewResolverFromConfig dựng resolver: cloudinary (nếu đủ cấu hình), blob (nếu có token), local luôn đứng cuối
func NewResolverFromConfig(cfg *config.Configuration) (*Resolver, error) {
	var strategies []Strategy
	if cfg.CloudinaryConfigured() {
		cld, err := NewCloudinaryStrategy(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.WithModule("upload").WithError(err).Warn("Cloudinary strategy disabled")
		} else {
			strategies = append(strategies, cld)
		}
	}
	if cfg.BlobReadWriteToken != "" {
		strategies = append(strategies, NewBlobStrategy(cfg.BlobReadWriteToken, ""))
	}
	local, err := NewLocalStrategy(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	strategies = append(strategies, local)
	return NewResolver(strategies...), nil
}

// Names trả về tên các strategy theo thứ tự
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Save lưu file qua các strategy theo thứ tự
func (r *Resolver) Save(ctx context.Context, file File, folder string) (string, error) {
	log := logger.WithModule("upload").WithField("file", file.Filename).WithField("folder", folder)
	var errs []error
	for _, s := range r.strategies {
		url, err := s.Upload(ctx, file, folder)
		if err != nil {
			log.WithField("strategy", s.Name()).WithError(err).Warn("Upload attempt failed")
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		log.WithField("strategy", s.Name()).WithField("url", url).Info("Upload attempt succeeded")
		return url, nil
	}
	if len(errs) == 0 {
		return "", errors.New("no upload strategy configured")
	}
	return "", errors.Join(errs...)
}

// SaveFormFile lưu file của field (nếu có). Không có file thì trả về chuỗi rỗng.
func (r *Resolver) SaveFormFile(c fiber.Ctx, field, folder string) (string, error) {
	files, err := formFiles(c, field)
	if err != nil || len(files) == 0 {
		return "", err
	}
	urls, err := r.saveAll(c.Context(), field, files[:1], folder)
	if err != nil {
		return "", err
	}
	return urls[0], nil
}

// SaveFormFiles lưu tối đa max file của field
func (r *Resolver) SaveFormFiles(c fiber.Ctx, field, folder string, max int) ([]string, error) {
	files, err := formFiles(c, field)
	if err != nil {
		return nil, err
	}
	if max > 0 && len(files) > max {
		return nil, ErrTooManyFiles
	}
	return r.saveAll(c.Context(), field, files, folder)
}

// ErrTooManyFiles trả về khi số file vượt giới hạn của field
var ErrTooManyFiles = common.NewValidationError("Too many files", nil)

// saveAll kiểm tra toàn bộ file trước khi lưu file nào
func (r *Resolver) saveAll(ctx context.Context, field string, headers []*multipart.FileHeader, folder string) ([]string, error) {
	files := make([]File, 0, len(headers))
	for _, fh := range headers {
		f, err := ReadFile(field, fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := r.Save(ctx, f, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func formFiles(c fiber.Ctx, field string) ([]*multipart.FileHeader, error) {
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	return form.File[field], nil
}
