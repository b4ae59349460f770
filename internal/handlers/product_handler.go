package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	logx "catalog/pkg/logger"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	validate := validator.New()
	// Report json field names in validation errors instead of Go names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Post("/products", h.HandleCreateProduct)
	router.Get("/products-search", h.HandleSearchProducts)
	router.Get("/products-stats", h.HandleCategoryStats)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns one page of the catalog, optionally filtered
// by category. Unparseable page/limit values fall back to the defaults
// (page 1, limit 5); out-of-range windows yield an empty page.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 5)

	return c.JSON(h.service.ListProducts(category, page, limit))
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product. All fields are required;
// explicit zero values (`price: 0`, `inStock: false`) are accepted, only
// fields absent from the body are rejected.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logx.Warn().Err(err).Msg("failed to parse create product body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			missing := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				missing = append(missing, e.Field())
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			})
		}
		return err
	}

	created := h.service.CreateProduct(req.Product())
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct shallow-merges the request body onto the stored
// product and returns the merged record.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logx.Warn().Err(err).Msg("failed to parse update product body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.service.UpdateProduct(c.Params("id"), &req)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return err
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes a product and echoes the removed record.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	removed, err := h.service.DeleteProduct(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
		"deleted": []models.Product{removed},
	})
}

// HandleSearchProducts returns products whose name contains the `name`
// query parameter, case-insensitively. The parameter must be present;
// an empty value is allowed and matches everything.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	if !c.Request().URI().QueryArgs().Has("name") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name query parameter is required",
		})
	}
	return c.JSON(h.service.SearchProducts(c.Query("name")))
}

// HandleCategoryStats returns the product count per category.
func (h *ProductHandler) HandleCategoryStats(c *fiber.Ctx) error {
	return c.JSON(h.service.CategoryStats())
}
