// internals/seeds/seeds.go
package seeds

import (
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	newsModel "nutriwell_backend/internals/features/news/model"
	productModel "nutriwell_backend/internals/features/products/model"
	siteModel "nutriwell_backend/internals/features/site/model"
	authHelper "nutriwell_backend/internals/features/users/auth/helper"
	userModel "nutriwell_backend/internals/features/users/user/model"
	helper "nutriwell_backend/internals/helpers"
)

// Run mengisi data awal: akun admin + kategori & kota starter.
// Idempoten: record yang sudah ada dilewati.
func Run(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedNewsCategories(db); err != nil {
		return err
	}
	if err := seedProductCategories(db); err != nil {
		return err
	}
	return seedCities(db)
}

func seedAdmin(db *gorm.DB) error {
	username := strings.TrimSpace(os.Getenv("SEED_ADMIN_USERNAME"))
	if username == "" {
		username = "admin"
	}
	email := strings.TrimSpace(strings.ToLower(os.Getenv("SEED_ADMIN_EMAIL")))
	if email == "" {
		email = "admin@localhost"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("⚠️  SEED_ADMIN_PASSWORD kosong, pakai default (segera ganti)")
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("LOWER(user_name) = ?", strings.ToLower(username)).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("seed: admin %q sudah ada, skip", username)
		return nil
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return err
	}
	admin := userModel.UserModel{
		UserName:     username,
		UserEmail:    email,
		UserPassword: hash,
		UserIsStaff:  true,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ seed: admin %q dibuat", username)
	return nil
}

func seedNewsCategories(db *gorm.DB) error {
	for _, name := range []string{"Company News", "Health Tips", "Events"} {
		slug := helper.Slugify(name, 100)
		var count int64
		if err := db.Model(&newsModel.NewsCategoryModel{}).
			Where("news_category_slug = ?", slug).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&newsModel.NewsCategoryModel{
			NewsCategoryName:     name,
			NewsCategorySlug:     slug,
			NewsCategoryIsActive: true,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProductCategories(db *gorm.DB) error {
	for _, name := range []string{"Vitamins", "Supplements", "Beverages"} {
		slug := helper.Slugify(name, 100)
		var count int64
		if err := db.Model(&productModel.ProductCategoryModel{}).
			Where("product_category_slug = ?", slug).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&productModel.ProductCategoryModel{
			ProductCategoryName:     name,
			ProductCategorySlug:     slug,
			ProductCategoryIsActive: true,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCities(db *gorm.DB) error {
	for _, name := range []string{"Jakarta", "Bandung", "Surabaya"} {
		var count int64
		if err := db.Model(&siteModel.CityModel{}).
			Where("LOWER(city_name) = ?", strings.ToLower(name)).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&siteModel.CityModel{
			CityName:     name,
			CityIsActive: true,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
