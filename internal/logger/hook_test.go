package logger

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(cfg *LogConfig, out *syncBuffer) (*logrus.Logger, *AsyncHook) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetOutput(&bytes.Buffer{})
	l.AddHook(NewFilterHook(cfg))
	hook := NewAsyncHookWithWriters([]io.Writer{out}, 10)
	l.AddHook(hook)
	return l, hook
}

func TestAsyncHookFlushesOnClose(t *testing.T) {
	out := &syncBuffer{}
	l, hook := newTestLogger(&LogConfig{}, out)

	l.WithField("module", "auth").Info("login ok")
	assert.NoError(t, hook.Close())

	assert.Contains(t, out.String(), "login ok")
	assert.Contains(t, out.String(), "module=auth")
	assert.NotContains(t, out.String(), filteredKey)
}

func TestFilterHook(t *testing.T) {
	out := &syncBuffer{}
	l, hook := newTestLogger(&LogConfig{FilterModules: "upload", FilterLogTypes: "info,error"}, out)

	l.WithField("module", "upload").Info("kept upload")
	l.WithField("module", "auth").Info("dropped auth")
	l.WithField("module", "upload").Warn("dropped warn")
	l.Error("kept without module")
	assert.NoError(t, hook.Close())

	got := out.String()
	assert.Contains(t, got, "kept upload")
	assert.Contains(t, got, "kept without module")
	assert.NotContains(t, got, "dropped auth")
	assert.NotContains(t, got, "dropped warn")
}

func TestParseFilter(t *testing.T) {
	assert.Nil(t, parseFilter(""))
	assert.Nil(t, parseFilter("*"))
	assert.Equal(t, map[string]bool{"get": true, "post": true}, parseFilter(" GET, post ,"))
}
