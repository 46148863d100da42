package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create - POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	id, err := caller(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req dto.CreateProductRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	p, err := h.productService.Create(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ProductResponse{Success: true, Message: "Product added successfully", Product: p})
}

// List - GET /products_data
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Filter - GET /filter?product_name=
func (h *ProductHandler) Filter(c *gin.Context) {
	products, err := h.productService.Filter(c.Request.Context(), c.Query("product_name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get - GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductResponse{Success: true, Product: p})
}

// ListMine - GET /myproducts
func (h *ProductHandler) ListMine(c *gin.Context) {
	id, err := caller(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if email := c.Query("email"); email != "" && !sameEmail(email, id.Email) {
		respondError(c, errSessionMismatch)
		return
	}

	products, err := h.productService.ListMine(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductListResponse{Success: true, Products: products})
}

// Update - PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := caller(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if email := c.Query("email"); email != "" && !sameEmail(email, id.Email) {
		respondError(c, errSessionMismatch)
		return
	}
	var req dto.UpdateProductRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	p, err := h.productService.Update(c.Request.Context(), id, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductResponse{Success: true, Message: "Product updated successfully", Product: p})
}

// Delete - DELETE /myproducts/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := caller(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if email := c.Query("email"); email != "" && !sameEmail(email, id.Email) {
		respondError(c, errSessionMismatch)
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Product deleted successfully"})
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
