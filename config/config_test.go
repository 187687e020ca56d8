package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		name string
		cfg  Configuration
		want string
	}{
		{"explicit name wins", Configuration{MongoDB_DBName: "site", MongoDB_ConnectionURI: "mongodb://localhost/other"}, "site"},
		{"path of local uri", Configuration{MongoDB_ConnectionURI: "mongodb://localhost:27017/hassan-elec"}, "hassan-elec"},
		{"srv uri with options", Configuration{MongoDB_ConnectionURI: "mongodb+srv://u:p@cluster0.example.net/shop?retryWrites=true"}, "shop"},
		{"no path", Configuration{MongoDB_ConnectionURI: "mongodb://localhost:27017/"}, "hassan-elec"},
		{"no slash", Configuration{MongoDB_ConnectionURI: "mongodb://localhost:27017"}, "hassan-elec"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DatabaseName())
		})
	}
}

func TestNewConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("JWT_SECRET=from-file\nPORT=6000\n"), 0o600))

	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")

	cfg, err := NewConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JwtSecret)
	assert.Equal(t, "6000", cfg.Port)
	assert.Equal(t, "7d", cfg.JwtExpire)
	assert.Equal(t, "admin@hassan-elec.com", cfg.AdminEmail)
	assert.False(t, cfg.CloudinaryConfigured())
	assert.False(t, cfg.IsProduction())
}

func TestNewConfigRequiresSecret(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "empty.env")
	require.NoError(t, os.WriteFile(file, []byte("PORT=5000\n"), 0o600))

	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := NewConfig(file)
	assert.Error(t, err)
}
