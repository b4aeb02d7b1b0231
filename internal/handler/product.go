package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopkit/shopkit/internal/handler/dto"
	"github.com/shopkit/shopkit/internal/model"
	"github.com/shopkit/shopkit/internal/service"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	svc    *service.ProductService
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/products.
// The full catalog is returned unfiltered and unpaginated.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	// An empty catalog serializes as [], not null.
	if products == nil {
		products = []*model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	input := service.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
	}

	product, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("product_created",
		"product_id", product.ID,
		"request_id", requestIDFrom(r),
	)

	writeJSON(w, http.StatusCreated, dto.CreateProductResponse{
		Message: "Product created successfully",
		Product: product,
	})
}
