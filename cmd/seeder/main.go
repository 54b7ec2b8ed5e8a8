package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/saathi-app/saathi/internal/config"
	"github.com/saathi-app/saathi/internal/database"
	"github.com/saathi-app/saathi/internal/models"
	"github.com/saathi-app/saathi/internal/recommend"
)

// demoVendor is one sample street-food vendor account.
type demoVendor struct {
	Username     string
	Email        string
	BusinessName string
	Needs        []string
	Location     string
	Phone        string
}

func demoVendors() []demoVendor {
	return []demoVendor{
		{
			Username:     "street_food_king",
			Email:        "vendor@example.com",
			BusinessName: "Street Food King",
			Needs:        []string{"onion", "tomato", "potato"},
			Location:     "Mumbai",
			Phone:        "9876543211",
		},
		{
			Username:     "siliguri_food_corner",
			Email:        "siliguri@example.com",
			BusinessName: "Siliguri Food Corner",
			Needs:        []string{"rice", "flour", "oil", "spices", "onion", "tomato"},
			Location:     "Siliguri",
			Phone:        "9876543212",
		},
		{
			Username:     "darjeeling_street_food",
			Email:        "darjeeling@example.com",
			BusinessName: "Darjeeling Street Food",
			Needs:        []string{"potato", "carrot", "onion", "tomato", "spices"},
			Location:     "Darjeeling",
			Phone:        "9876543213",
		},
		{
			Username:     "jalpaiguri_food_hub",
			Email:        "jalpaiguri@example.com",
			BusinessName: "Jalpaiguri Food Hub",
			Needs:        []string{"rice", "flour", "oil", "onion", "tomato", "potato"},
			Location:     "Jalpaiguri",
			Phone:        "9876543214",
		},
		{
			Username:     "cooch_behar_street_vendor",
			Email:        "coochbehar@example.com",
			BusinessName: "Cooch Behar Street Vendor",
			Needs:        []string{"rice", "flour", "oil", "spices", "onion", "tomato", "potato"},
			Location:     "Cooch Behar",
			Phone:        "9876543215",
		},
	}
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview changes without writing to database")
	flag.Parse()

	// Load .env
	godotenv.Load()

	// Load config
	cfg := config.Load()

	suppliers := recommend.SampleCatalog()
	vendors := demoVendors()

	if *dryRun {
		log.Println("DRY RUN - No changes will be made")
		for _, sup := range suppliers {
			fmt.Printf("supplier  %-32s %-12s items=%v\n", sup.Name, sup.Location, sup.Items)
		}
		for _, v := range vendors {
			fmt.Printf("vendor    %-32s %-12s needs=%v\n", v.BusinessName, v.Location, v.Needs)
		}
		return
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	ctx := context.Background()

	seeded := 0
	for _, sup := range suppliers {
		if err := seedSupplier(ctx, db, sup, string(passwordHash)); err != nil {
			log.Fatalf("Failed to seed supplier %q: %v", sup.Name, err)
		}
		seeded++
	}
	log.Printf("Seeded %d suppliers", seeded)

	seeded = 0
	for _, v := range vendors {
		if err := seedVendor(ctx, db, v, string(passwordHash)); err != nil {
			log.Fatalf("Failed to seed vendor %q: %v", v.BusinessName, err)
		}
		seeded++
	}
	log.Printf("Seeded %d vendors", seeded)

	log.Println("Seeding complete")
}

// seedSupplier creates the supplier's user account (skipping it when the
// email is already registered) and upserts the business profile.
func seedSupplier(ctx context.Context, db *database.DB, sup models.Supplier, passwordHash string) error {
	email := slugify(sup.Name) + "@example.com"

	user, err := db.GetUserByEmail(ctx, email)
	if errors.Is(err, database.ErrUserNotFound) {
		location := sup.Location
		user, err = db.CreateUser(ctx, &models.RegisterRequest{
			Username: slugify(sup.Name),
			Email:    email,
			Role:     models.RoleSupplier,
			Location: &location,
		}, passwordHash)
	}
	if err != nil {
		return err
	}

	saved, err := db.UpsertSupplier(ctx, user.ID, &models.UpdateSupplierRequest{
		BusinessName: sup.Name,
		Items:        sup.Items,
		PriceRange:   sup.PriceRange,
		DeliveryTime: sup.DeliveryTime,
		Description:  sup.Description,
	})
	if err != nil {
		return err
	}

	// Ratings come with the sample data; real ones accumulate over time.
	_, err = db.Pool.Exec(ctx, `
		UPDATE suppliers SET rating = $2, total_ratings = $3 WHERE id = $1
	`, saved.ID, sup.Rating, sup.TotalRatings)
	return err
}

// seedVendor creates a vendor account plus profile, skipping existing ones.
func seedVendor(ctx context.Context, db *database.DB, v demoVendor, passwordHash string) error {
	user, err := db.GetUserByEmail(ctx, v.Email)
	if errors.Is(err, database.ErrUserNotFound) {
		location := v.Location
		phone := v.Phone
		user, err = db.CreateUser(ctx, &models.RegisterRequest{
			Username: v.Username,
			Email:    v.Email,
			Role:     models.RoleVendor,
			Phone:    &phone,
			Location: &location,
		}, passwordHash)
	}
	if err != nil {
		return err
	}

	_, err = db.UpsertVendor(ctx, user.ID, &models.UpdateVendorRequest{
		BusinessName: v.BusinessName,
		Needs:        v.Needs,
		Location:     v.Location,
	})
	return err
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, s)
	return strings.Trim(s, "_")
}
