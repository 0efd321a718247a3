package dto

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=150"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RegisterRequest ใช้ชื่อ field แบบ UserCreationForm (password1/password2)
type RegisterRequest struct {
	Username  string `json:"username" form:"username" validate:"required,max=150,username"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Password1 string `json:"password1" form:"password1" validate:"required,min=8,max=128"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password1"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

// FormDescriptor ตอบ GET ของหน้า form (ไม่มี template ฝั่ง server)
type FormDescriptor struct {
	Form      string   `json:"form"`
	Action    string   `json:"action"`
	Method    string   `json:"method"`
	Fields    []string `json:"fields"`
	CSRFToken string   `json:"csrfToken,omitempty"`
}
