package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriconnect-backend/internal/apperr"
)

func validProduct() CreateProductRequest {
	return CreateProductRequest{
		Username:          "alice",
		ProductName:       "Corn",
		MobileNumber:      "1234567890",
		Email:             "alice@x.com",
		Address:           "Farm Rd",
		Farming:           "organic",
		StockAvailability: "50",
	}
}

func TestValidateCreateProduct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateProductRequest)
		wantMsg string
	}{
		{"valid", func(*CreateProductRequest) {}, ""},
		{"valid price", func(r *CreateProductRequest) { r.Price = "12.50" }, ""},
		{"missing username", func(r *CreateProductRequest) { r.Username = "" }, "username is required"},
		{"missing product name", func(r *CreateProductRequest) { r.ProductName = "" }, "product_name is required"},
		{"missing mobile", func(r *CreateProductRequest) { r.MobileNumber = "" }, "mobile_number is required"},
		{"missing email", func(r *CreateProductRequest) { r.Email = "" }, "email is required"},
		{"short mobile", func(r *CreateProductRequest) { r.MobileNumber = "12345" }, "mobile_number must be 10 characters long"},
		{"negative stock", func(r *CreateProductRequest) { r.StockAvailability = "-3" }, "stock_availability must be a whole non-negative number"},
		{"bad price", func(r *CreateProductRequest) { r.Price = "abc" }, "price must be a non-negative amount"},
		{"bad farming", func(r *CreateProductRequest) { r.Farming = "hydroponic" }, "farming must be one of: organic, inorganic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProduct()
			tt.mutate(&req)
			err := Validate(&req)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
			assert.Equal(t, tt.wantMsg, apperr.Message(err))
		})
	}
}

func TestValidateUpdateProductSkipsAbsentFields(t *testing.T) {
	require.NoError(t, Validate(&UpdateProductRequest{}))

	bad := "oops"
	err := Validate(&UpdateProductRequest{StockAvailability: &bad})
	require.Error(t, err)
	assert.Equal(t, "stock_availability must be a whole non-negative number", apperr.Message(err))
}

func TestValidateUpdateProductPrice(t *testing.T) {
	tests := []struct {
		price   string
		wantErr bool
	}{
		{"", false},
		{"7", false},
		{"7.25", false},
		{"7.255", true},
		{"-1", true},
		{"free", true},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			price := tt.price
			err := Validate(&UpdateProductRequest{Price: &price})
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "price must be a non-negative amount", apperr.Message(err))
		})
	}
}

func TestValidateRegister(t *testing.T) {
	err := Validate(&RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "pw", Role: "admin"})
	require.Error(t, err)
	assert.Equal(t, "role must be one of: consumer, producer", apperr.Message(err))

	require.NoError(t, Validate(&RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "pw", Role: "consumer"}))
}

func TestUpdateProductChanges(t *testing.T) {
	name := "Sweet Corn"
	changes := (&UpdateProductRequest{ProductName: &name}).Changes()
	require.NotNil(t, changes.ProductName)
	assert.Equal(t, "Sweet Corn", *changes.ProductName)
	assert.Nil(t, changes.Price)
}
