package models

import (
	"time"
)

// Chat is one stored question/answer exchange with the FAQ assistant.
type Chat struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the request body for asking the FAQ assistant a question.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's answer.
type ChatResponse struct {
	Response string `json:"response"`
}
