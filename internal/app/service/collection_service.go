package service

import (
	"errors"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCollectionNotFound = errors.New("collection not found")

// CollectionSummary is a collection with its product count, for listings.
type CollectionSummary struct {
	Collection   model.Collection
	ProductCount int64
}

type CollectionService interface {
	ListCollections() ([]CollectionSummary, error)
	GetCollectionWithProducts(name string) (*model.Collection, []model.Product, error)
}

type collectionService struct {
	collectionRepo repository.CollectionRepository
	productRepo    repository.ProductRepository
}

func NewCollectionService(
	collectionRepo repository.CollectionRepository,
	productRepo repository.ProductRepository,
) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
	}
}

func (s *collectionService) ListCollections() ([]CollectionSummary, error) {
	logger.Debug("Listing collections")

	collections, err := s.collectionRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list collections", err)
		return nil, err
	}

	summaries := make([]CollectionSummary, 0, len(collections))
	for _, collection := range collections {
		count, err := s.collectionRepo.CountProducts(collection.ID)
		if err != nil {
			logger.Error("Failed to count collection products", err, map[string]interface{}{
				"collection_id": collection.ID,
			})
			return nil, err
		}
		summaries = append(summaries, CollectionSummary{
			Collection:   collection,
			ProductCount: count,
		})
	}

	logger.Info("Collections listed successfully", map[string]interface{}{
		"count": len(summaries),
	})
	return summaries, nil
}

// GetCollectionWithProducts resolves a collection by its exact name. An
// unknown name is a distinct not-found outcome, never an empty listing.
func (s *collectionService) GetCollectionWithProducts(name string) (*model.Collection, []model.Product, error) {
	logger.Debug("Fetching collection with products", map[string]interface{}{
		"name": name,
	})

	collection, err := s.collectionRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Collection not found", map[string]interface{}{
				"name": name,
			})
			return nil, nil, ErrCollectionNotFound
		}
		logger.Error("Failed to fetch collection", err, map[string]interface{}{
			"name": name,
		})
		return nil, nil, err
	}

	products, err := s.productRepo.FindByCollectionID(collection.ID)
	if err != nil {
		logger.Error("Failed to fetch collection products", err, map[string]interface{}{
			"collection_id": collection.ID,
		})
		return nil, nil, err
	}

	logger.Info("Collection fetched successfully", map[string]interface{}{
		"name":          name,
		"product_count": len(products),
	})
	return collection, products, nil
}
