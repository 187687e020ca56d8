// Package authdto chứa input của các route đăng nhập và profile.
package authdto

// LoginInput đầu vào đăng nhập (Owner/Manager và Employee)
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateInput đầu vào cập nhật profile. Ảnh gửi qua file "photo" hoặc photoUrl.
type ProfileUpdateInput struct {
	Name     *string `json:"name"`
	PhotoURL string  `json:"photoUrl"`
}
