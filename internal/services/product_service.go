package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agriconnect-backend/internal/apperr"
	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/models"
	"agriconnect-backend/internal/store"
)

var ErrProductNotFound = apperr.NotFound("Product not found")

type ProductService struct {
	products store.ProductStore
}

func NewProductService(products store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// RequireOwnership allows a mutation of p only by the producer whose email
// the product carries. A missing product is reported before ownership.
func RequireOwnership(p *models.Product, caller models.Identity, action string) error {
	if p == nil {
		return ErrProductNotFound
	}
	if caller.Email == "" || !strings.EqualFold(p.Email, caller.Email) {
		return apperr.Forbidden("You can only " + action + " your own products")
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, caller models.Identity, req *dto.CreateProductRequest) (*models.Product, error) {
	req.Email = normalizeEmail(req.Email)
	req.ProductName = strings.TrimSpace(req.ProductName)
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Email != caller.Email {
		return nil, apperr.Forbidden("Product email must match your account")
	}

	p := &models.Product{
		Username:          req.Username,
		ProductName:       req.ProductName,
		MobileNumber:      req.MobileNumber,
		Email:             req.Email,
		Price:             req.Price,
		Address:           req.Address,
		Farming:           req.Farming,
		StockAvailability: req.StockAvailability,
	}
	if oid, err := primitive.ObjectIDFromHex(caller.UserID); err == nil {
		p.OwnerID = oid
	}

	if err := s.products.CreateProduct(ctx, p); err != nil {
		return nil, apperr.Server("Error adding product", err)
	}
	slog.Info("product created", "product_id", p.ID.Hex(), "user_id", caller.UserID)
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, apperr.Server("Error fetching products", err)
	}
	return products, nil
}

// Filter matches product names containing name, ignoring case. An empty
// name lists everything.
func (s *ProductService) Filter(ctx context.Context, name string) ([]*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.List(ctx)
	}
	products, err := s.products.FilterProducts(ctx, name)
	if err != nil {
		return nil, apperr.Server("Error searching products", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.products.GetProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, apperr.Server("Error fetching product", err)
	}
	return p, nil
}

func (s *ProductService) ListMine(ctx context.Context, caller models.Identity) ([]*models.Product, error) {
	products, err := s.products.ListProductsByEmail(ctx, caller.Email)
	if err != nil {
		return nil, apperr.Server("Error fetching products", err)
	}
	return products, nil
}

func (s *ProductService) Update(ctx context.Context, caller models.Identity, id string, req *dto.UpdateProductRequest) (*models.Product, error) {
	existing, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := RequireOwnership(existing, caller, "update"); err != nil {
		return nil, err
	}

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := checkReadOnly(existing, req); err != nil {
		return nil, err
	}
	if req.ProductName != nil {
		name := strings.TrimSpace(*req.ProductName)
		if name == "" {
			return nil, apperr.Validation("product_name cannot be empty")
		}
		req.ProductName = &name
	}
	if req.Email != nil && normalizeEmail(*req.Email) != existing.Email {
		return nil, apperr.Forbidden("Product email cannot be changed to another account")
	}

	updated, err := s.products.UpdateProduct(ctx, id, req.Changes())
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, apperr.Server("Error updating product", err)
	}
	slog.Info("product updated", "product_id", id, "user_id", caller.UserID)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, caller models.Identity, id string) error {
	existing, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := RequireOwnership(existing, caller, "delete"); err != nil {
		return err
	}

	err = s.products.DeleteProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return apperr.Server("Error deleting product", err)
	}
	slog.Info("product deleted", "product_id", id, "user_id", caller.UserID)
	return nil
}

// lookup returns nil without error when the product does not exist, so the
// ownership check can report it.
// checkReadOnly lets an edit echo the product's identity fields back, as long
// as they still describe the stored record.
func checkReadOnly(existing *models.Product, req *dto.UpdateProductRequest) error {
	if req.ID != nil && *req.ID != existing.ID.Hex() {
		return apperr.Validation("_id cannot be changed")
	}
	if req.OwnerID != nil && *req.OwnerID != existing.OwnerID.Hex() {
		return apperr.Validation("owner_id cannot be changed")
	}
	if req.Username != nil && *req.Username != existing.Username {
		return apperr.Validation("username cannot be changed")
	}
	return nil
}

func (s *ProductService) lookup(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.products.GetProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Server("Error fetching product", err)
	}
	return p, nil
}
