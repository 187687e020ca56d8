package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIs(t *testing.T) {
	t.Run("wrapped predefined error", func(t *testing.T) {
		err := fmt.Errorf("load employee: %w", ErrNotFound)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrForbidden))
	})

	t.Run("same code and message with different details", func(t *testing.T) {
		err := NewError(ErrCodeAuthRole, MsgForbidden, StatusForbidden, "employee")
		assert.True(t, errors.Is(err, ErrForbidden))
	})
}

func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
	assert.Equal(t, ErrNotFound, ConvertMongoError(mongo.ErrNoDocuments))

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.Equal(t, ErrDuplicate, ConvertMongoError(dup))

	custom := NewValidationError("Please fill all required fields", nil)
	assert.Same(t, custom, ConvertMongoError(custom))

	var appErr *Error
	converted := ConvertMongoError(errors.New("boom"))
	assert.True(t, errors.As(converted, &appErr))
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}
