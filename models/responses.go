package models

import "time"

// Response is the common JSON envelope. Success is always present; the other
// fields are omitted when empty.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// RegisterResponseData is the data member of a successful registration.
type RegisterResponseData struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Tag      Tag    `json:"tag"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// IconResponse is returned after a profile icon upload.
type IconResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ProfileIcon string `json:"profileIcon"`
}

// ReviewPage is a page of reviews. LastCursor is null when no further page
// exists and is never omitted.
type ReviewPage[T any] struct {
	Success    bool   `json:"success"`
	Reviews    []T    `json:"reviews"`
	LastCursor *int64 `json:"lastCursor"`
}

// ReviewUpdatedResponse is returned after a review edit.
type ReviewUpdatedResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScrapResponse reports the scrap state after a toggle.
type ScrapResponse struct {
	Success   bool `json:"success"`
	IsScraped bool `json:"isScraped"`
}
