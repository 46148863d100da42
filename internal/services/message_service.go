package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agriconnect-backend/internal/apperr"
	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/models"
	"agriconnect-backend/internal/store"
)

type MessageService struct {
	users    store.UserStore
	products store.ProductStore
	messages store.MessageStore
}

func NewMessageService(users store.UserStore, products store.ProductStore, messages store.MessageStore) *MessageService {
	return &MessageService{users: users, products: products, messages: messages}
}

// Send records a message from the caller to a producer about one of that
// producer's products. The sender is always the caller.
func (s *MessageService) Send(ctx context.Context, caller models.Identity, req *dto.SendMessageRequest) (*models.Message, error) {
	req.ConsumerMail = normalizeEmail(req.ConsumerMail)
	req.ProducerMail = normalizeEmail(req.ProducerMail)
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.Message = strings.TrimSpace(req.Message)
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.ConsumerMail != "" && req.ConsumerMail != caller.Email {
		return nil, apperr.Forbidden("You can only send messages as yourself")
	}

	producer, err := s.users.FindUserByEmail(ctx, req.ProducerMail)
	if errors.Is(err, store.ErrNotFound) || (err == nil && producer.Role != models.RoleProducer) {
		return nil, apperr.NotFound("Producer not found")
	}
	if err != nil {
		return nil, apperr.Server("Failed to send message", err)
	}

	product, err := s.products.FindProductByOwnerAndName(ctx, producer.Email, req.ProductName)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, apperr.Server("Failed to send message", err)
	}

	msg := &models.Message{
		ConsumerMail: caller.Email,
		ProducerMail: producer.Email,
		ProductID:    product.ID,
		ProductName:  product.ProductName,
		Message:      req.Message,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		return nil, apperr.Server("Failed to send message", err)
	}
	slog.Info("message sent", "message_id", msg.ID.Hex(), "product_id", product.ID.Hex())
	return msg, nil
}

// ListForProducer returns the messages addressed to the caller. A non-empty
// email must name the caller.
func (s *MessageService) ListForProducer(ctx context.Context, caller models.Identity, email, productName string) ([]*models.Message, error) {
	if email = normalizeEmail(email); email != "" && email != caller.Email {
		return nil, apperr.Forbidden("You can only view your own comments")
	}
	msgs, err := s.messages.ListMessages(ctx, caller.Email, strings.TrimSpace(productName))
	if err != nil {
		return nil, apperr.Server("Error fetching messages", err)
	}
	return msgs, nil
}
