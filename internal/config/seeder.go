package config

import (
	"log"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedMasterData seeds initial master data
func SeedMasterData(db *gorm.DB) error {
	if err := seedBases(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedBases(db *gorm.DB) error {
	bases := []models.Base{
		{
			Name:     "Base Alpha",
			Location: "Northern Command",
			Capacity: 5000,
		},
		{
			Name:     "Base Beta",
			Location: "Eastern Command",
			Capacity: 3200,
		},
		{
			Name:     "Base Gamma",
			Location: "Southern Command",
			Capacity: 4100,
		},
	}

	for _, b := range bases {
		var existing models.Base
		if err := db.Where("name = ?", b.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&b).Error; err != nil {
					return err
				}
				log.Printf("   Created base: %s", b.Name)
			}
		}
	}
	return nil
}
