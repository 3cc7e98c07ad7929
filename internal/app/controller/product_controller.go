package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/internal/app/service"
	apperrors "github.com/fara3/fara3-backend/internal/errors"
	"github.com/fara3/fara3-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

func collectionName(p *model.Product) interface{} {
	if p.Collection != nil {
		return p.Collection.Name
	}
	return nil
}

// GetProducts lists products, optionally filtered by category, collection
// name and featured flag. Combined filters are ANDed.
// GET /api/products?category=&collection=&featured=
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.ProductFilter{
		Category:       c.Query("category"),
		CollectionName: c.Query("collection"),
		FeaturedOnly:   strings.EqualFold(c.Query("featured"), "true"),
	}

	products, err := ctrl.productService.ListProducts(filter)
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		apperrors.InternalError(c)
		return
	}

	productList := make([]gin.H, 0, len(products))
	for i := range products {
		p := &products[i]
		productList = append(productList, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"details":     p.Details,
			"price":       p.Price,
			"image_url":   p.ImageURL,
			"collection":  collectionName(p),
			"stock":       p.Stock,
			"is_featured": p.IsFeatured,
			"created_at":  p.CreatedAt,
		})
	}

	log.Info("Products fetched successfully", map[string]interface{}{
		"count": len(productList),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": productList,
	})
}

// GetFeaturedProducts lists featured products only
// GET /api/products/featured
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.GetFeaturedProducts()
	if err != nil {
		log.Error("Failed to fetch featured products", err, nil)
		apperrors.InternalError(c)
		return
	}

	productList := make([]gin.H, 0, len(products))
	for i := range products {
		p := &products[i]
		productList = append(productList, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image_url":   p.ImageURL,
			"stock":       p.Stock,
		})
	}

	log.Info("Featured products fetched successfully", map[string]interface{}{
		"count": len(productList),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": productList,
	})
}

// GetProductByID returns a single product
// GET /api/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": idStr,
		})
		apperrors.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := ctrl.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			apperrors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c)
		return
	}

	log.Info("Product fetched successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"product": gin.H{
			"id":          product.ID,
			"name":        product.Name,
			"description": product.Description,
			"details":     product.Details,
			"price":       product.Price,
			"image_url":   product.ImageURL,
			"collection":  collectionName(product),
			"stock":       product.Stock,
			"is_featured": product.IsFeatured,
		},
	})
}
