package utility

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zougmar/hassan-elec/internal/common"
)

// ParseObjectID chuyển đổi chuỗi thành ObjectID, trả về common.ErrInvalidID nếu sai định dạng
func ParseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidID, common.StatusBadRequest, id)
	}
	return objectID, nil
}

// dateLayouts là các định dạng ngày được chấp nhận từ client
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parse ngày từ client (ISO 8601 hoặc YYYY-MM-DD, hiểu theo UTC)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
