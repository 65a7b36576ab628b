package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/seacatering/catering-api/internal/models"
)

// Seed fills an empty database with the starter catalog, a couple of
// accounts, and sample testimonials. Each table is skipped when it already
// has rows, so the seed is safe to re-run.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedMealPlans(db); err != nil {
		return err
	}
	return seedTestimonials(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("seed: %d users already present, skipping", count)
		return nil
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("Admin123456!"), 12)
	if err != nil {
		return err
	}
	customerHash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), 12)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			Name:         "Super Admin",
			Email:        "admin@seacatering.id",
			PasswordHash: string(adminHash),
			Role:         string(models.RoleSuperAdmin),
		},
		{
			Name:         "Brian (Manager)",
			Email:        "brian@seacatering.id",
			PasswordHash: string(adminHash),
			Role:         string(models.RoleAdmin),
		},
		{
			Name:         "Taufan",
			Email:        "taufan@example.com",
			PasswordHash: string(customerHash),
			Role:         string(models.RoleCustomer),
		},
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}
	log.Printf("seed: created %d users", len(users))
	return nil
}

func seedMealPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MealPlan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("seed: %d meal plans already present, skipping", count)
		return nil
	}

	plans := []models.MealPlan{
		{
			Name:        "Diet Plan",
			Price:       30000,
			Description: "Perfect for weight management and healthy living. Low-calorie, nutrient-dense meals designed to help you achieve your fitness goals while enjoying delicious food.",
			Features: []string{
				"Calorie-controlled portions (1200-1500 calories)",
				"High fiber content for better digestion",
				"Fresh vegetables and lean proteins",
				"Nutritionist-approved recipes",
			},
			Icon:     "🥗",
			IsActive: true,
		},
		{
			Name:        "Protein Plan",
			Price:       40000,
			Description: "High-protein meals for active individuals and fitness enthusiasts. Build muscle, recover faster, and fuel your workouts with our protein-rich meal plans.",
			Features: []string{
				"High protein content (25-35g per meal)",
				"Supports muscle building and recovery",
				"Premium quality lean meats and fish",
				"Plant-based protein options available",
			},
			Icon:     "💪",
			IsActive: true,
		},
		{
			Name:        "Royal Plan",
			Price:       60000,
			Description: "Our premium offering with gourmet ingredients and chef-crafted recipes. Experience luxury dining with the finest, most nutritious ingredients available.",
			Features: []string{
				"Gourmet ingredients and chef-crafted recipes",
				"Premium cuts of meat and fresh seafood",
				"Organic vegetables and superfoods",
				"Personalized nutrition consultation",
			},
			Icon:     "👑",
			IsActive: true,
		},
	}

	if err := db.Create(&plans).Error; err != nil {
		return err
	}
	log.Printf("seed: created %d meal plans", len(plans))
	return nil
}

func seedTestimonials(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Testimonial{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("seed: %d testimonials already present, skipping", count)
		return nil
	}

	testimonials := []models.Testimonial{
		{
			CustomerName:  "Sarah M.",
			Rating:        5,
			ReviewMessage: "SEA Catering has completely transformed my daily routine! The meals are delicious, healthy, and always delivered on time.",
			IsApproved:    true,
		},
		{
			CustomerName:  "David L.",
			Rating:        5,
			ReviewMessage: "As a busy professional, SEA Catering has been a lifesaver. No more worrying about what to eat or spending hours cooking.",
			IsApproved:    true,
		},
		{
			CustomerName:  "Rina K.",
			Rating:        4,
			ReviewMessage: "Great variety and the delivery is reliable. I would love to see a few more vegetarian options on the Protein Plan.",
			IsApproved:    true,
		},
	}

	if err := db.Create(&testimonials).Error; err != nil {
		return err
	}
	log.Printf("seed: created %d testimonials", len(testimonials))
	return nil
}
