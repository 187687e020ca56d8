// Package orghdl xử lý các route của domain tổ chức.
package orghdl

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	"github.com/zougmar/hassan-elec/internal/api/middleware"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// Lỗi field bắt buộc khi cập nhật
var (
	ErrEmailRequired = common.NewValidationError("Email is required", nil)
	ErrNameRequired  = common.NewValidationError("Name is required", nil)
)

// bindAndValidate đọc body (JSON hoặc form) rồi validate theo struct tag
func bindAndValidate(c fiber.Ctx, input interface{}) error {
	if err := basehdl.BindInput(c, input); err != nil {
		return err
	}
	return basehdl.ValidateInput(input, "")
}

// principal lấy principal đã xác thực, thiếu thì trả lỗi 401
func principal(c fiber.Ctx) (authmodels.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, common.ErrUnauthorized
	}
	return p, nil
}

// notFound thay lỗi "Not found" chung bằng message của resource
func notFound(err error, message string) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewNotFoundError(message)
	}
	return err
}

// deleted trả {message: "<Resource> deleted"} sau khi xóa
func deleted(c fiber.Ctx, resource string, err error) error {
	return basehdl.HandleMessage(c, resource+" deleted", err)
}

// optionalRef đổi chuỗi id tùy chọn thành *ObjectID, chuỗi rỗng trả về nil
func optionalRef(s string) (*primitive.ObjectID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := utility.ParseObjectID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// updateSet gom các field được gửi lên thành $set
type updateSet bson.M

func (u updateSet) str(key string, v *string) {
	if v != nil {
		u[key] = strings.TrimSpace(*v)
	}
}

// required như str nhưng chuỗi rỗng (sau trim) trả về lỗi empty
func (u updateSet) required(key string, v *string, empty error) error {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return empty
	}
	u[key] = trimmed
	return nil
}

func (u updateSet) ref(key string, v *string) error {
	if v == nil {
		return nil
	}
	id, err := utility.ParseObjectID(*v)
	if err != nil {
		return err
	}
	u[key] = id
	return nil
}

func (u updateSet) date(key string, v *string) error {
	if v == nil {
		return nil
	}
	d, err := parseDate(key, *v)
	if err != nil {
		return err
	}
	u[key] = d
	return nil
}

// parseDate đọc ngày từ input, sai định dạng trả lỗi 400
func parseDate(field, s string) (time.Time, error) {
	d, err := utility.ParseDate(s)
	if err != nil {
		return time.Time{}, common.NewValidationError("Invalid date for "+field, s)
	}
	return d, nil
}
