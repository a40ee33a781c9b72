package main

import (
	"gin-wardrobe/infra"
	"gin-wardrobe/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.StoredDocument{}); err != nil {
		panic("Failed to migrate database")
	}
}
