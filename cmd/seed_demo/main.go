package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/NamanHarbola/Rack-Management/internal/config"
	"github.com/NamanHarbola/Rack-Management/internal/database"
	"github.com/NamanHarbola/Rack-Management/internal/models"
)

func main() {
	fmt.Println("🌱 MADAN STORE Demo Data Seeder")
	fmt.Println(strings.Repeat("=", 60))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")
	fmt.Println()

	// Run migrations first
	fmt.Println("🔨 Running database migrations...")
	if err := db.AutoMigrate(&models.Rack{}, &models.StatusCheck{}, &models.UserAuth{}); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migrations complete")
	fmt.Println()

	// Check if data already exists
	var rackCount int64
	db.Model(&models.Rack{}).Count(&rackCount)
	if rackCount > 0 {
		fmt.Printf("⚠️  Database already has %d racks. Clear them first? (y/N): ", rackCount)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("❌ Aborted. Database not modified.")
			return
		}

		fmt.Println("🗑️  Clearing existing racks...")
		db.Exec("TRUNCATE TABLE racks")
		fmt.Println("✅ Racks cleared")
	}

	fmt.Println()
	fmt.Println("📦 Creating demo racks...")
	fmt.Println()

	racks := []models.Rack{
		{
			ID:         uuid.NewString(),
			RackNumber: "R-001",
			Floor:      "Ground Floor",
			Items:      []string{"Cables", "Switches", "Power Strips"},
		},
		{
			ID:         uuid.NewString(),
			RackNumber: "R-002",
			Floor:      "Ground Floor",
			Items:      []string{"Monitors", "Keyboards", "Mice"},
		},
		{
			ID:         uuid.NewString(),
			RackNumber: "R-101",
			Floor:      "First Floor",
			Items:      []string{"Printers", "Toner Cartridges", "Scanners"},
		},
		{
			ID:         uuid.NewString(),
			RackNumber: "R-102",
			Floor:      "First Floor",
			Items:      []string{"Laptops", "Chargers", "Docking Stations"},
		},
		{
			ID:         uuid.NewString(),
			RackNumber: "R-201",
			Floor:      "Second Floor",
			Items:      []string{"Spare Screws", "Brackets", "Cable Ties"},
		},
	}

	created := 0
	for _, rack := range racks {
		if err := db.Create(&rack).Error; err != nil {
			log.Printf("⚠️  Failed to create rack %s: %v", rack.RackNumber, err)
			continue
		}
		fmt.Printf("   ✓ Created rack: %s on %s (%d items)\n", rack.RackNumber, rack.Floor, len(rack.Items))
		created++
	}

	// Summary
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("🎉 Demo data created successfully!")
	fmt.Println()
	fmt.Println("📊 Summary:")
	fmt.Printf("   • %d racks across 3 floors\n", created)
	fmt.Println()
	fmt.Println("🚀 Start the server:")
	fmt.Println("   go run ./cmd/api")
	fmt.Println("   Then visit: http://localhost:8001")
	fmt.Println()
	fmt.Println("💻 Or browse from the terminal:")
	fmt.Println("   go run ./cmd/console")
	fmt.Println(strings.Repeat("=", 60))
}
