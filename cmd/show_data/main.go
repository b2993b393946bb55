package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

func main() {
	// Connect directly to the running embedded postgres
	dsn := "host=localhost user=postgres password=postgres dbname=madanstore port=5433 sslmode=disable client_encoding=UTF8"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		fmt.Printf("❌ Failed to connect: %v\n", err)
		fmt.Println("\n💡 Try starting the server first:")
		fmt.Println("   go run ./cmd/api")
		os.Exit(1)
	}

	fmt.Println("╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║          📊 MADAN STORE Inventory Report                  ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()

	// Count stats
	var rackCount, statusCount, userCount int64
	db.Model(&models.Rack{}).Count(&rackCount)
	db.Model(&models.StatusCheck{}).Count(&statusCount)
	db.Model(&models.UserAuth{}).Count(&userCount)

	fmt.Println("📈 DATABASE STATISTICS")
	fmt.Println("──────────────────────────────────────────────────────────")
	fmt.Printf("  Racks:          %3d\n", rackCount)
	fmt.Printf("  Status checks:  %3d\n", statusCount)
	fmt.Printf("  Users:          %3d\n", userCount)
	fmt.Println()

	itemCount := 0
	if rackCount > 0 {
		var floors []string
		db.Model(&models.Rack{}).Distinct("floor").Order("floor").Pluck("floor", &floors)

		fmt.Println("🏢 RACKS BY FLOOR")
		fmt.Println("──────────────────────────────────────────────────────────")
		for _, floor := range floors {
			var racks []models.Rack
			db.Where("floor = ?", floor).Order("created_at").Find(&racks)

			fmt.Printf("  📍 %s (%d racks)\n", floor, len(racks))
			for _, rack := range racks {
				fmt.Printf("      └─ %s", rack.RackNumber)
				if len(rack.Items) > 0 {
					fmt.Printf(": ")
					for i, item := range rack.Items {
						if i > 0 {
							fmt.Printf(", ")
						}
						fmt.Printf("%s", item)
					}
					itemCount += len(rack.Items)
				} else {
					fmt.Printf(" (empty)")
				}
				fmt.Println()
			}
		}
		fmt.Println()
	}

	// JSON export
	if len(os.Args) > 1 && os.Args[1] == "--json" {
		data := map[string]interface{}{
			"stats": map[string]int64{
				"racks":         rackCount,
				"items":         int64(itemCount),
				"status_checks": statusCount,
				"users":         userCount,
			},
		}
		jsonData, _ := json.MarshalIndent(data, "", "  ")
		fmt.Println("\n📄 JSON EXPORT:")
		fmt.Println(string(jsonData))
	}

	fmt.Println("══════════════════════════════════════════════════════════")
	fmt.Printf("✨ %d racks holding %d items\n", rackCount, itemCount)
	fmt.Println()
	fmt.Println("🚀 Start the web server:")
	fmt.Println("   go run ./cmd/api")
	fmt.Println("   Then visit: http://localhost:8001")
	fmt.Println("══════════════════════════════════════════════════════════")
}
