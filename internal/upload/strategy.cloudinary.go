package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStrategy upload ảnh lên Cloudinary, trả về secure_url
type CloudinaryStrategy struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStrategy tạo strategy từ cloud name / api key / api secret
func NewCloudinaryStrategy(cloudName, apiKey, apiSecret string) (*CloudinaryStrategy, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStrategy{cld: cld}, nil
}

// Name implement Strategy
func (s *CloudinaryStrategy) Name() string { return "cloudinary" }

// Upload implement Strategy
func (s *CloudinaryStrategy) Upload(ctx context.Context, file File, folder string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(file.Data), uploader.UploadParams{
		Folder:       remoteFolder(folder),
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary returned no secure_url")
	}
	return resp.SecureURL, nil
}
