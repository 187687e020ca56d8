package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RootFolder là thư mục gốc trên các host ảnh remote
const RootFolder = "hassan-elec"

// Strategy lưu một file ảnh và trả về URL (hoặc đường dẫn /uploads/...) để lưu vào document
type Strategy interface {
	Name() string
	Upload(ctx context.Context, file File, folder string) (string, error)
}

// remoteFolder ghép folder con vào thư mục gốc
func remoteFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return RootFolder
	}
	return RootFolder + "/" + folder
}

// uniqueName sinh tên <prefix>-<ms>-<uuid><ext>, prefix rỗng thì bỏ
func uniqueName(prefix, ext string) string {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}
