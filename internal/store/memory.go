package store

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agriconnect-backend/internal/models"
)

// Memory keeps every collection in process. Records come back in insertion
// order, as copies.
type Memory struct {
	mu       sync.RWMutex
	users    []models.User
	products []models.Product
	messages []models.Message
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, *u)
	return nil
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.products = append(m.products, *p)
	return nil
}

func (m *Memory) ListProducts(context.Context) ([]*models.Product, error) {
	return m.selectProducts(func(*models.Product) bool { return true }), nil
}

func (m *Memory) FilterProducts(_ context.Context, name string) ([]*models.Product, error) {
	needle := strings.ToLower(name)
	return m.selectProducts(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.ProductName), needle)
	}), nil
}

func (m *Memory) ListProductsByEmail(_ context.Context, email string) ([]*models.Product, error) {
	return m.selectProducts(func(p *models.Product) bool { return p.Email == email }), nil
}

func (m *Memory) GetProduct(_ context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.productIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	p := m.products[i]
	return &p, nil
}

func (m *Memory) FindProductByOwnerAndName(_ context.Context, email, name string) (*models.Product, error) {
	found := m.selectProducts(func(p *models.Product) bool {
		return p.Email == email && p.ProductName == name
	})
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found[0], nil
}

func (m *Memory) UpdateProduct(_ context.Context, id string, changes models.ProductChanges) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.productIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	p := &m.products[i]
	assign(&p.ProductName, changes.ProductName)
	assign(&p.MobileNumber, changes.MobileNumber)
	assign(&p.Price, changes.Price)
	assign(&p.Address, changes.Address)
	assign(&p.Farming, changes.Farming)
	assign(&p.StockAvailability, changes.StockAvailability)

	out := *p
	return &out, nil
}

func (m *Memory) DeleteProduct(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.productIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.products = append(m.products[:i], m.products[i+1:]...)
	return nil
}

func (m *Memory) CreateMessage(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *Memory) ListMessages(_ context.Context, producerEmail, productName string) ([]*models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*models.Message{}
	for _, msg := range m.messages {
		if msg.ProducerMail != producerEmail {
			continue
		}
		if productName != "" && msg.ProductName != productName {
			continue
		}
		out = append(out, &msg)
	}
	return out, nil
}

func (m *Memory) selectProducts(keep func(*models.Product) bool) []*models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*models.Product{}
	for _, p := range m.products {
		if keep(&p) {
			out = append(out, &p)
		}
	}
	return out
}

// productIndex must be called with m.mu held.
func (m *Memory) productIndex(id string) int {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1
	}
	for i := range m.products {
		if m.products[i].ID == oid {
			return i
		}
	}
	return -1
}

func assign(dst *string, val *string) {
	if val != nil {
		*dst = *val
	}
}
