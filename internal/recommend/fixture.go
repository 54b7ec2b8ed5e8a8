package recommend

import (
	"github.com/saathi-app/saathi/internal/models"
)

// SampleCatalog returns the demo supplier dataset for the pilot cities. The
// seeder loads it into the database and the engine tests run against it
// through a StaticSource.
func SampleCatalog() []models.Supplier {
	return []models.Supplier{
		{
			ID:           1,
			Name:         "Fresh Vegetables Co.",
			Location:     "Mumbai",
			Items:        []string{"onion", "tomato", "potato", "carrot"},
			Rating:       4.5,
			TotalRatings: 25,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliverySameDay,
			Description:  "Fresh vegetables delivered daily",
		},
		{
			ID:           2,
			Name:         "Quality Foods Ltd.",
			Location:     "Mumbai",
			Items:        []string{"rice", "flour", "oil", "spices"},
			Rating:       4.2,
			TotalRatings: 18,
			PriceRange:   models.PriceRangeLow,
			DeliveryTime: models.DeliveryNextDay,
			Description:  "Quality dry goods and spices",
		},
		{
			ID:           3,
			Name:         "Mumbai Market Hub",
			Location:     "Mumbai",
			Items:        []string{"onion", "tomato", "potato", "rice", "flour"},
			Rating:       4.8,
			TotalRatings: 42,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliverySameDay,
			Description:  "One-stop shop for all ingredients",
		},
		{
			ID:           4,
			Name:         "Delhi Fresh Foods",
			Location:     "Delhi",
			Items:        []string{"onion", "tomato", "potato", "carrot"},
			Rating:       4.3,
			TotalRatings: 31,
			PriceRange:   models.PriceRangeLow,
			DeliveryTime: models.DeliverySameDay,
			Description:  "Fresh vegetables from Delhi markets",
		},
		{
			ID:           5,
			Name:         "Capital Vegetables",
			Location:     "Delhi",
			Items:        []string{"rice", "flour", "oil", "spices"},
			Rating:       4.6,
			TotalRatings: 28,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliveryNextDay,
			Description:  "Premium quality dry goods",
		},
		{
			ID:           6,
			Name:         "Bangalore Fresh",
			Location:     "Bangalore",
			Items:        []string{"onion", "tomato", "potato", "carrot"},
			Rating:       4.4,
			TotalRatings: 22,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliverySameDay,
			Description:  "Fresh vegetables from Bangalore farms",
		},
		{
			ID:           7,
			Name:         "Siliguri Fresh Market",
			Location:     "Siliguri",
			Items:        []string{"onion", "tomato", "potato", "carrot", "rice", "flour"},
			Rating:       4.6,
			TotalRatings: 35,
			PriceRange:   models.PriceRangeLow,
			DeliveryTime: models.DeliverySameDay,
			Description:  "Fresh vegetables and grains from Siliguri markets",
		},
		{
			ID:           8,
			Name:         "Darjeeling Organic Foods",
			Location:     "Darjeeling",
			Items:        []string{"potato", "carrot", "onion", "tomato", "spices", "tea"},
			Rating:       4.8,
			TotalRatings: 28,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliveryNextDay,
			Description:  "Organic vegetables and premium Darjeeling spices",
		},
		{
			ID:           9,
			Name:         "Jalpaiguri Wholesale Hub",
			Location:     "Jalpaiguri",
			Items:        []string{"rice", "flour", "oil", "spices", "onion", "tomato"},
			Rating:       4.3,
			TotalRatings: 19,
			PriceRange:   models.PriceRangeLow,
			DeliveryTime: models.DeliverySameDay,
			Description:  "Wholesale supplier for all food ingredients",
		},
		{
			ID:           10,
			Name:         "Cooch Behar Food Supply",
			Location:     "Cooch Behar",
			Items:        []string{"rice", "flour", "oil", "spices", "onion", "tomato", "potato"},
			Rating:       4.5,
			TotalRatings: 31,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliverySameDay,
			Description:  "Complete food supply for street vendors",
		},
		{
			ID:           11,
			Name:         "North Bengal Fresh Vegetables",
			Location:     "Siliguri",
			Items:        []string{"onion", "tomato", "potato", "carrot", "cabbage", "cauliflower"},
			Rating:       4.7,
			TotalRatings: 42,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliverySameDay,
			Description:  "Fresh vegetables from North Bengal farms",
		},
		{
			ID:           12,
			Name:         "Darjeeling Spice Traders",
			Location:     "Darjeeling",
			Items:        []string{"spices", "tea", "cardamom", "ginger", "garlic"},
			Rating:       4.9,
			TotalRatings: 38,
			PriceRange:   models.PriceRangeHigh,
			DeliveryTime: models.DeliveryNextDay,
			Description:  "Premium Darjeeling spices and tea",
		},
	}
}
