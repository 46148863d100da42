package dto

import "agriconnect-backend/internal/models"

// SendMessageRequest keeps the original wire names. ConsumerMail is accepted
// for compatibility but the sender always comes from the session.
type SendMessageRequest struct {
	ConsumerMail string `json:"Consumer_mail" validate:"omitempty,email"`
	ProducerMail string `json:"Producer_mail" validate:"required,email"`
	ProductName  string `json:"product_name" validate:"required,max=200"`
	Message      string `json:"message" validate:"required,max=2000"`
}

type MessageListResponse struct {
	Success  bool              `json:"success"`
	Messages []*models.Message `json:"messages"`
	Message  string            `json:"message,omitempty"`
}
