package sitesvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zougmar/hassan-elec/internal/common"
)

func TestRemoveAt(t *testing.T) {
	images := []string{"/uploads/a.png", "/uploads/b.png", "/uploads/c.png"}

	out, err := RemoveAt(images, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.png", "/uploads/c.png"}, out)
	assert.Len(t, images, 3, "input must not be modified")

	out, err = RemoveAt([]string{"only"}, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)

	for _, idx := range []int{-1, 3, 100} {
		_, err := RemoveAt(images, idx)
		assert.ErrorIs(t, err, ErrInvalidImageIndex, "index %d", idx)
	}
}

func TestNotFoundAs(t *testing.T) {
	assert.Nil(t, notFoundAs(nil, ErrProjectNotFound))
	assert.Same(t, ErrProjectNotFound, notFoundAs(common.ErrNotFound, ErrProjectNotFound))

	other := errors.New("boom")
	assert.Same(t, other, notFoundAs(other, ErrProjectNotFound))

	var appErr *common.Error
	require.True(t, errors.As(notFoundAs(common.ErrNotFound, ErrRequestNotFound), &appErr))
	assert.Equal(t, "Request not found", appErr.Message)
	assert.Equal(t, common.StatusNotFound, appErr.StatusCode)
}
