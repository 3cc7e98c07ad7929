package db

import (
	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/pkg/logger"
	"gorm.io/gorm"
)

// Seed inserts the sample catalog when the collections table is empty.
// Running it against a populated database is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Collection{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Catalog already seeded, skipping...", map[string]interface{}{
			"existing_collections": count,
		})
		return nil
	}

	logger.Info("Seeding sample collections and products...")

	collections := []model.Collection{
		{Name: "minimalist", DisplayName: "HOODIES", Description: "Clean lines & neutral tones", ImageURL: "hoodie.jpg"},
		{Name: "streetwear", DisplayName: "Streetwear", Description: "Bold prints & urban style", ImageURL: "street.png"},
		{Name: "pants", DisplayName: "PANTS", Description: "Classic and modern pants", ImageURL: "pants.jpg"},
		{Name: "new arrivals", DisplayName: "Sports Wear", Description: "Latest Fara3 designs", ImageURL: "sport.jpg"},
		{Name: "oversized fit", DisplayName: "Oversized Collection", Description: "Loose, trending silhouettes", ImageURL: "oversize.jpg"},
		{Name: "summer drop", DisplayName: "SHIRTS", Description: "Striped & Smooth", ImageURL: "shirt.jpg"},
		{Name: "everyday basics", DisplayName: "COATS", Description: "Maxi fur coat", ImageURL: "coat.jpg"},
		{Name: "hats", DisplayName: "HATS", Description: "Bold prints & urban style", ImageURL: "hats.jpg"},
	}

	collectionIDs := make(map[string]uint, len(collections))
	for i := range collections {
		if err := db.Create(&collections[i]).Error; err != nil {
			logger.Error("Failed to create collection", err, map[string]interface{}{
				"name": collections[i].Name,
			})
			return err
		}
		collectionIDs[collections[i].Name] = collections[i].ID
	}

	type seedProduct struct {
		model.Product
		collectionName string
	}

	products := []seedProduct{
		{Product: model.Product{Name: "Black Hoodie", Description: "Clean minimalist design", Details: "100% premium cotton, available in black, white, and grey.", Price: 35.00, ImageURL: "black-hoodie.jpg", Stock: 25}, collectionName: "minimalist"},
		{Product: model.Product{Name: "White Hoodie", Description: "Basic comfort hoodie", Details: "Soft fleece interior, ribbed cuffs and hem.", Price: 45.00, ImageURL: "white-hoodie.jpg", Stock: 20}, collectionName: "minimalist"},
		{Product: model.Product{Name: "Red Street Wear", Description: "Urban street style", Details: "Bold graphics, relaxed fit.", Price: 55.00, ImageURL: "red-street.jpg", Stock: 15}, collectionName: "streetwear"},
		{Product: model.Product{Name: "Black Street Wear", Description: "Streetwear essential", Details: "Water-resistant material, multiple pockets.", Price: 50.00, ImageURL: "black-street.jpg", Stock: 18}, collectionName: "streetwear"},
		{Product: model.Product{Name: "Men Pant", Description: "Cool pants outwear", Details: "Classic oversized men pants", Price: 60.00, ImageURL: "men-pant.jpg", Stock: 30}, collectionName: "pants"},
		{Product: model.Product{Name: "Women Pants", Description: "Classic women pants", Details: "Classic women pants", Price: 65.00, ImageURL: "women-pant.jpg", Stock: 28}, collectionName: "pants"},
		{Product: model.Product{Name: "Liverpool T-Shirt", Description: "Latest collection", Details: "Limited edition design", Price: 70.00, ImageURL: "liverpool.jpg", Stock: 12}, collectionName: "new arrivals"},
		{Product: model.Product{Name: "Barcelona T-Shirt", Description: "Latest collection", Details: "Limited edition design", Price: 70.00, ImageURL: "barcelona.jpg", Stock: 15}, collectionName: "new arrivals"},
		{Product: model.Product{Name: "Fara3 Classic T-Shirt", Description: "Soft cotton, black or white", Details: "Premium quality cotton t-shirt", Price: 55.00, ImageURL: "classic-tee.png", Stock: 50, IsFeatured: true}},
		{Product: model.Product{Name: "Fara3 Original Pant", Description: "Bold logo, streetwear fit", Details: "Original design pants", Price: 65.00, ImageURL: "original-pant.png", Stock: 40, IsFeatured: true}},
	}

	for i := range products {
		product := products[i].Product
		if name := products[i].collectionName; name != "" {
			if id, ok := collectionIDs[name]; ok {
				product.CollectionID = &id
			}
		}
		if err := db.Create(&product).Error; err != nil {
			logger.Error("Failed to create product", err, map[string]interface{}{
				"name": product.Name,
			})
			return err
		}
	}

	logger.Info("Sample catalog seeded successfully", map[string]interface{}{
		"collections": len(collections),
		"products":    len(products),
	})
	return nil
}
