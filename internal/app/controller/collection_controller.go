package controller

import (
	"errors"
	"net/http"

	"github.com/fara3/fara3-backend/internal/app/service"
	apperrors "github.com/fara3/fara3-backend/internal/errors"
	"github.com/fara3/fara3-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	collectionService service.CollectionService
}

func NewCollectionController(collectionService service.CollectionService) *CollectionController {
	return &CollectionController{
		collectionService: collectionService,
	}
}

// GetCollections lists all collections with their product counts
// GET /api/collections
func (ctrl *CollectionController) GetCollections(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	summaries, err := ctrl.collectionService.ListCollections()
	if err != nil {
		log.Error("Failed to fetch collections", err, nil)
		apperrors.InternalError(c)
		return
	}

	collections := make([]gin.H, 0, len(summaries))
	for _, summary := range summaries {
		collections = append(collections, gin.H{
			"id":            summary.Collection.ID,
			"name":          summary.Collection.Name,
			"display_name":  summary.Collection.DisplayName,
			"description":   summary.Collection.Description,
			"image_url":     summary.Collection.ImageURL,
			"product_count": summary.ProductCount,
		})
	}

	log.Info("Collections fetched successfully", map[string]interface{}{
		"count": len(collections),
	})

	c.JSON(http.StatusOK, gin.H{
		"collections": collections,
	})
}

// GetCollectionByName returns one collection and its products
// GET /api/collections/:name
func (ctrl *CollectionController) GetCollectionByName(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	name := c.Param("name")

	collection, products, err := ctrl.collectionService.GetCollectionWithProducts(name)
	if err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			log.Warn("Collection not found", map[string]interface{}{
				"name": name,
			})
			apperrors.NotFound(c, "Collection not found")
			return
		}
		log.Error("Failed to fetch collection", err, map[string]interface{}{
			"name": name,
		})
		apperrors.InternalError(c)
		return
	}

	productList := make([]gin.H, 0, len(products))
	for _, p := range products {
		productList = append(productList, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"details":     p.Details,
			"price":       p.Price,
			"image_url":   p.ImageURL,
			"stock":       p.Stock,
		})
	}

	log.Info("Collection fetched successfully", map[string]interface{}{
		"name":          name,
		"product_count": len(productList),
	})

	c.JSON(http.StatusOK, gin.H{
		"collection": gin.H{
			"id":           collection.ID,
			"name":         collection.Name,
			"display_name": collection.DisplayName,
		},
		"products": productList,
	})
}
