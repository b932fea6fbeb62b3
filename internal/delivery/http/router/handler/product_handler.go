package handler

import (
	"log/slog"
	"net/http"
	"time"

	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createProductRequest is the input contract for POST /product. Price is a
// pointer so a missing field is distinguishable from an explicit zero.
type createProductRequest struct {
	Name    string   `json:"name" validate:"required"`
	Price   *float64 `json:"price" validate:"required"`
	Content *string  `json:"content"`
}

// productResponse is the output contract for product endpoints.
type productResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Content:   product.Content,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the product creation request. The route is guarded by the
// auth middleware; the authenticated user becomes the product owner.
func (h *ProductHandler) Create(c echo.Context) error {
	claims, ok := httpmiddleware.CurrentClaims(c)
	if !ok {
		return domainerrors.ErrAuthRequired.WrapMessage("no authenticated claims on context")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), &usecase.CreateProductInput{
		Name:    req.Name,
		Price:   *req.Price,
		Content: req.Content,
	}, claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// List handles the public product listing request.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	responses := make([]productResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}

	return c.JSON(http.StatusOK, responses)
}
