package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("PG_HOST"), os.Getenv("PG_PORT"), os.Getenv("PG_USERNAME"), os.Getenv("PG_PASSWORD"), os.Getenv("PG_DATABASE"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		fmt.Println("DB Error:", err)
		return
	}

	for _, table := range []string{"racks", "status_checks", "user_auths"} {
		fmt.Printf("=== %s columns ===\n", table)
		var result []map[string]interface{}
		db.Raw("SELECT column_name, data_type FROM information_schema.columns WHERE table_name = ? ORDER BY ordinal_position", table).Scan(&result)
		for _, r := range result {
			fmt.Printf(" - %v (%v)\n", r["column_name"], r["data_type"])
		}
		fmt.Println()
	}

	fmt.Println("=== Rack Data ===")
	var racks []map[string]interface{}
	db.Raw("SELECT id, rack_number, floor, items FROM racks ORDER BY floor, created_at").Scan(&racks)
	for i, r := range racks {
		fmt.Printf("Rack %d: %+v\n", i, r)
	}
}
