package dto

import "github.com/shopkit/shopkit/internal/model"

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
}

// CreateProductResponse is returned on successful product creation.
type CreateProductResponse struct {
	Message string         `json:"message"`
	Product *model.Product `json:"product"`
}
