package global

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo validator và đăng ký các custom rule:
//   - no_xss: chặn chuỗi chứa script/handler HTML
//   - objectid: chuỗi hex ObjectID hợp lệ
//   - http_url: chuỗi bắt đầu bằng http:// hoặc https://
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Tên field trong lỗi lấy theo json tag để client dễ đối chiếu
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("no_xss", validateNoXSS)
	_ = v.RegisterValidation("objectid", validateObjectID)
	_ = v.RegisterValidation("http_url", validateHTTPURL)

	Validate = v
}

var dangerousPatterns = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"onclick=",
	"onmouseover=",
	"document.cookie",
	"<iframe",
	"<object",
	"<embed",
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateObjectID kiểm tra chuỗi là ObjectID hex hợp lệ. Chuỗi rỗng để omitempty/required xử lý.
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return primitive.IsValidObjectID(value)
}

// validateHTTPURL kiểm tra URL ảnh truyền thay cho file upload
func validateHTTPURL(fl validator.FieldLevel) bool {
	return IsHTTPURL(fl.Field().String())
}

// IsHTTPURL cho biết chuỗi có bắt đầu bằng http:// hoặc https://
func IsHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ValidationDetails chuyển lỗi validator thành danh sách {field, rule} để trả cho client.
// Lỗi khác trả về nil.
func ValidationDetails(err error) []map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		item := map[string]string{"field": fe.Field(), "rule": fe.Tag()}
		if fe.Param() != "" {
			item["param"] = fe.Param()
		}
		out = append(out, item)
	}
	return out
}
