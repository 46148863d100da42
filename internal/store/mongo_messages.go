package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agriconnect-backend/internal/models"
)

func (m *MongoDB) CreateMessage(ctx context.Context, msg *models.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	_, err := m.Messages.InsertOne(ctx, msg)
	return err
}

func (m *MongoDB) ListMessages(ctx context.Context, producerEmail, productName string) ([]*models.Message, error) {
	filter := bson.M{"Producer_mail": producerEmail}
	if productName != "" {
		filter["product_name"] = productName
	}
	return findAll[models.Message](ctx, m.Messages, filter)
}
