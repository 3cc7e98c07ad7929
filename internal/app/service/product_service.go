package service

import (
	"errors"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	ListProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetFeaturedProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]model.Product, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"category":   filter.Category,
		"collection": filter.CollectionName,
		"featured":   filter.FeaturedOnly,
	})

	products, err := s.productRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to list products", err, nil)
		return nil, err
	}

	logger.Info("Products listed successfully", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetFeaturedProducts() ([]model.Product, error) {
	logger.Debug("Fetching featured products")

	products, err := s.productRepo.FindFeatured()
	if err != nil {
		logger.Error("Failed to fetch featured products", err)
		return nil, err
	}

	logger.Info("Featured products fetched successfully", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	logger.Debug("Fetching product by ID", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	return product, nil
}
