package models

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NicknameRequest is the body of PUT /api/user/me/nickname.
type NicknameRequest struct {
	Nickname string `json:"nickname"`
}

// ReviewContentRequest is the body of review create and update calls.
type ReviewContentRequest struct {
	Content string `json:"content"`
}

// Icon is an uploaded profile image on its way to the blob store. The
// client's filename and claimed content type are not kept; the type is
// sniffed from Body.
type Icon struct {
	Size int64
	Body []byte
}
