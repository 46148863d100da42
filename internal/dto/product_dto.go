package dto

import "agriconnect-backend/internal/models"

type CreateProductRequest struct {
	Username          string `json:"username" validate:"required,max=100"`
	ProductName       string `json:"product_name" validate:"required,max=200"`
	MobileNumber      string `json:"mobile_number" validate:"required,number,len=10"`
	Email             string `json:"email" validate:"required,email"`
	Price             string `json:"price" validate:"omitempty,price"`
	Address           string `json:"address" validate:"max=500"`
	Farming           string `json:"farming" validate:"omitempty,oneof=organic inorganic"`
	StockAvailability string `json:"stock_availability" validate:"omitempty,number"`
}

// UpdateProductRequest carries only the fields the client sent. ID, OwnerID
// and Username are read-only: clients echo the product they fetched, so they
// are accepted but must match the stored record. An empty Price removes it.
type UpdateProductRequest struct {
	ID                *string `json:"_id"`
	OwnerID           *string `json:"owner_id"`
	Username          *string `json:"username"`
	ProductName       *string `json:"product_name" validate:"omitempty,max=200"`
	MobileNumber      *string `json:"mobile_number" validate:"omitempty,number,len=10"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Price             *string `json:"price" validate:"omitempty,price"`
	Address           *string `json:"address" validate:"omitempty,max=500"`
	Farming           *string `json:"farming" validate:"omitempty,oneof=organic inorganic"`
	StockAvailability *string `json:"stock_availability" validate:"omitempty,number"`
}

func (r *UpdateProductRequest) Changes() models.ProductChanges {
	return models.ProductChanges{
		ProductName:       r.ProductName,
		MobileNumber:      r.MobileNumber,
		Price:             r.Price,
		Address:           r.Address,
		Farming:           r.Farming,
		StockAvailability: r.StockAvailability,
	}
}

type ProductResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Product *models.Product `json:"product"`
}

type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []*models.Product `json:"products"`
}
