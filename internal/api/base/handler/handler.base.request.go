package basehdl

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/global"
	"github.com/zougmar/hassan-elec/internal/utility"
)

var validatorOnce sync.Once

// IsMultipart cho biết request gửi dạng multipart/form-data
func IsMultipart(c fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

func isURLEncoded(c fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationForm)
}

// ParseRequestBody parse body JSON vào input. Body rỗng được coi là {}.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return decodeError(err)
	}
	return nil
}

// BindInput đọc input từ JSON body hoặc từ các field của form (multipart / urlencoded).
// Field form xuất hiện nhiều lần được gom thành mảng.
func BindInput(c fiber.Ctx, input interface{}) error {
	if !IsMultipart(c) && !isURLEncoded(c) {
		return ParseRequestBody(c, input)
	}

	values, err := FormValues(c)
	if err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	fields := make(map[string]interface{}, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			fields[key] = vals[0]
		} else {
			fields[key] = vals
		}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return common.ErrInvalidFormat
	}
	if err := json.Unmarshal(raw, input); err != nil {
		return decodeError(err)
	}
	return nil
}

// FormValues trả về toàn bộ field text của form
func FormValues(c fiber.Ctx) (map[string][]string, error) {
	if IsMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return form.Value, nil
	}
	out := map[string][]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		out[string(k)] = append(out[string(k)], string(v))
	})
	return out, nil
}

// decodeError phân biệt lỗi text đa ngôn ngữ sai định dạng với lỗi JSON chung
func decodeError(err error) error {
	if errors.Is(err, basemodels.ErrMalformedLocalized) {
		return common.NewError(common.ErrCodeValidationFormat, "Invalid localized text: expected a JSON object with en, fr, ar", common.StatusBadRequest, err.Error())
	}
	return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
}

// ValidateInput chạy validator theo struct tag. message rỗng thì dùng thông báo mặc định.
func ValidateInput(input interface{}, message string) error {
	validatorOnce.Do(func() {
		if global.Validate == nil {
			global.InitValidator()
		}
	})
	if err := global.Validate.Struct(input); err != nil {
		if message == "" {
			message = common.MsgValidationError
		}
		return common.NewValidationError(message, global.ValidationDetails(err))
	}
	return nil
}

// ParseObjectIDParam đọc ObjectID từ path param
func ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	return utility.ParseObjectID(c.Params(name))
}

// QueryObjectID đọc ObjectID tùy chọn từ query string. Không có thì trả về nil.
func QueryObjectID(c fiber.Ctx, name string) (*primitive.ObjectID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := utility.ParseObjectID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ImageSaver lưu ảnh upload từ form và trả về URL hoặc đường dẫn public
type ImageSaver interface {
	SaveFormFile(c fiber.Ctx, field, folder string) (string, error)
	SaveFormFiles(c fiber.Ctx, field, folder string, max int) ([]string, error)
}

// ImageFromRequest trả về ảnh của request. File ở field của form multipart luôn được kiểm tra
// và lưu trước, kể cả khi có URL, để file sai định dạng bị từ chối.
// URL http(s) trong urlValue được ưu tiên và dùng nguyên văn. Không có ảnh thì trả về "".
func ImageFromRequest(c fiber.Ctx, images ImageSaver, field, urlValue, folder string) (string, error) {
	saved := ""
	if images != nil && IsMultipart(c) {
		var err error
		if saved, err = images.SaveFormFile(c, field, folder); err != nil {
			return "", err
		}
	}
	if u := strings.TrimSpace(urlValue); global.IsHTTPURL(u) {
		return u, nil
	}
	return saved, nil
}
