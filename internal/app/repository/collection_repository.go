package repository

import (
	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/pkg/logger"
	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(collection *model.Collection) error
	FindAll() ([]model.Collection, error)
	FindByName(name string) (*model.Collection, error)
	CountProducts(collectionID uint) (int64, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(collection *model.Collection) error {
	logger.Debug("Creating collection in database", map[string]interface{}{
		"name": collection.Name,
	})

	if err := r.db.Create(collection).Error; err != nil {
		logger.Error("Failed to create collection in database", err, map[string]interface{}{
			"name": collection.Name,
		})
		return err
	}

	return nil
}

func (r *collectionRepository) FindAll() ([]model.Collection, error) {
	logger.Debug("Finding all collections in database")

	var collections []model.Collection
	if err := r.db.Find(&collections).Error; err != nil {
		logger.Error("Failed to find collections in database", err)
		return nil, err
	}

	logger.Debug("Collections found in database", map[string]interface{}{
		"count": len(collections),
	})
	return collections, nil
}

func (r *collectionRepository) FindByName(name string) (*model.Collection, error) {
	logger.Debug("Finding collection by name in database", map[string]interface{}{
		"name": name,
	})

	var collection model.Collection
	if err := r.db.Where("name = ?", name).First(&collection).Error; err != nil {
		logger.Error("Failed to find collection by name in database", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	return &collection, nil
}

func (r *collectionRepository) CountProducts(collectionID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error; err != nil {
		logger.Error("Failed to count collection products in database", err, map[string]interface{}{
			"collection_id": collectionID,
		})
		return 0, err
	}
	return count, nil
}
