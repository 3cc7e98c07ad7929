package repository

import (
	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductFilter narrows product lookups. Zero-value fields are ignored and
// set fields are ANDed together.
type ProductFilter struct {
	Category       string
	CollectionName string
	FeaturedOnly   bool
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	FindFeatured() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByCollectionID(collectionID uint) ([]model.Product, error)
	Update(product *model.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}

	return nil
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"category":   filter.Category,
		"collection": filter.CollectionName,
		"featured":   filter.FeaturedOnly,
	})

	query := r.db.Model(&model.Product{}).Preload("Collection")

	if filter.Category != "" {
		query = query.Where("products.category = ?", filter.Category)
	}
	if filter.CollectionName != "" {
		query = query.Joins("JOIN collections ON collections.id = products.collection_id").
			Where("collections.name = ?", filter.CollectionName)
	}
	if filter.FeaturedOnly {
		query = query.Where("products.is_featured = ?", true)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"category":   filter.Category,
			"collection": filter.CollectionName,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) FindFeatured() ([]model.Product, error) {
	return r.FindWithFilter(ProductFilter{FeaturedOnly: true})
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	logger.Debug("Finding product by ID in database", map[string]interface{}{
		"product_id": id,
	})

	var product model.Product
	if err := r.db.Preload("Collection").First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) FindByCollectionID(collectionID uint) ([]model.Product, error) {
	logger.Debug("Finding products by collection ID in database", map[string]interface{}{
		"collection_id": collectionID,
	})

	var products []model.Product
	if err := r.db.Where("collection_id = ?", collectionID).Find(&products).Error; err != nil {
		logger.Error("Failed to find products by collection ID in database", err, map[string]interface{}{
			"collection_id": collectionID,
		})
		return nil, err
	}

	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}

	return nil
}
