// Package store persists users, products, messages and sessions.
package store

import (
	"context"
	"errors"

	"agriconnect-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("store: record not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type ProductStore interface {
	CreateProduct(ctx context.Context, p *models.Product) error
	ListProducts(ctx context.Context) ([]*models.Product, error)
	// FilterProducts matches name case-insensitively as a literal substring.
	FilterProducts(ctx context.Context, name string) ([]*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	FindProductByOwnerAndName(ctx context.Context, email, name string) (*models.Product, error)
	ListProductsByEmail(ctx context.Context, email string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id string, changes models.ProductChanges) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type MessageStore interface {
	CreateMessage(ctx context.Context, m *models.Message) error
	// ListMessages returns messages addressed to producerEmail, narrowed to
	// productName when it is not empty.
	ListMessages(ctx context.Context, producerEmail, productName string) ([]*models.Message, error)
}

// Store is the full persistence surface the services need.
type Store interface {
	UserStore
	ProductStore
	MessageStore
	Ping(ctx context.Context) error
}

var (
	_ Store = (*MongoDB)(nil)
	_ Store = (*Memory)(nil)
)
