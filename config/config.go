package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Port                  string `env:"PORT" envDefault:"5000"`                                               // Cổng HTTP
	GoEnv                 string `env:"GO_ENV" envDefault:"development"`                                      // Môi trường: development, production
	JwtSecret             string `env:"JWT_SECRET,required"`                                                  // Bí mật ký JWT
	JwtExpire             string `env:"JWT_EXPIRE" envDefault:"7d"`                                           // Thời hạn token (7d, 12h, 3600, ...)
	MongoDB_ConnectionURI string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017/hassan-elec"`       // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME"`                                                       // Tên database, mặc định lấy từ URI
	AdminEmail            string `env:"ADMIN_EMAIL" envDefault:"admin@hassan-elec.com"`                       // Email owner khởi tạo
	AdminPassword         string `env:"ADMIN_PASSWORD" envDefault:"admin123"`                                 // Mật khẩu owner khởi tạo
	UploadDir             string `env:"UPLOAD_DIR" envDefault:"uploads"`                                      // Thư mục lưu ảnh local
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`                                          // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`                            // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"300"`                                      // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`                                    // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`                                 // Bật/tắt rate limiting
	// Cloudinary (tùy chọn, đủ 3 giá trị thì ảnh được upload lên Cloudinary)
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	// Vercel Blob (tùy chọn)
	BlobReadWriteToken string `env:"BLOB_READ_WRITE_TOKEN"`
	// SMTP để báo yêu cầu dịch vụ mới (tùy chọn)
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
	NotifyEmail  string `env:"NOTIFY_EMAIL"`
}

// IsProduction cho biết server đang chạy ở môi trường production
func (c *Configuration) IsProduction() bool {
	return strings.EqualFold(c.GoEnv, "production")
}

// CloudinaryConfigured cho biết đã cấu hình đủ Cloudinary
func (c *Configuration) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// DatabaseName trả về tên database: MONGODB_DBNAME, hoặc path của URI, hoặc "hassan-elec"
func (c *Configuration) DatabaseName() string {
	if c.MongoDB_DBName != "" {
		return c.MongoDB_DBName
	}
	uri := c.MongoDB_ConnectionURI
	if i := strings.Index(uri, "://"); i >= 0 {
		uri = uri[i+3:]
	}
	if i := strings.Index(uri, "/"); i >= 0 {
		name := uri[i+1:]
		if j := strings.IndexAny(name, "?#"); j >= 0 {
			name = name[:j]
		}
		if name != "" {
			return name
		}
	}
	return "hassan-elec"
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Đi lên từ thư mục hiện tại để tìm config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) và biến môi trường.
// Biến môi trường đã set sẵn được ưu tiên hơn giá trị trong file.
func NewConfig(files ...string) (*Configuration, error) {
	if len(files) == 0 {
		if envPath := getEnvPath(); envPath != "" {
			if _, err := os.Stat(envPath); err == nil {
				files = append(files, envPath)
			}
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("load env file %v: %w", files, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
