package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/scentscape/scentscape-backend/config"
	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Imports a catalog spreadsheet into the products table.
//
// Expected columns, first row is the header:
//
//	name | description | price | original_price | category | image_url | rating | is_new | top_notes | heart_notes | base_notes
//
// Prices are minor units (2499 = 24.99). Note columns are
// semicolon-separated lists.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, skipped, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d (skipped %d rows)\n", len(products), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Printf("Failed to import product %q: %v", products[i].Name, err)
			continue
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", imported)
}

func readProductsFromXLSX(filePath string) ([]model.Product, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seen := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 5 {
			skipped++
			continue
		}

		name := strings.TrimSpace(cell(row, 0))
		description := strings.TrimSpace(cell(row, 1))
		priceStr := strings.TrimSpace(cell(row, 2))
		originalPriceStr := strings.TrimSpace(cell(row, 3))
		category := model.ProductCategory(strings.TrimSpace(cell(row, 4)))
		imageURL := strings.TrimSpace(cell(row, 5))
		ratingStr := strings.TrimSpace(cell(row, 6))
		isNewStr := strings.TrimSpace(cell(row, 7))
		topNotes := parseNotes(cell(row, 8))
		heartNotes := parseNotes(cell(row, 9))
		baseNotes := parseNotes(cell(row, 10))

		if name == "" || priceStr == "" {
			skipped++
			continue
		}
		if seen[name] {
			skipped++
			continue
		}
		if !model.ValidCategory(category) {
			log.Printf("Row %d: unknown category %q, skipping", i+1, category)
			skipped++
			continue
		}

		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price <= 0 {
			log.Printf("Row %d: invalid price %q, skipping", i+1, priceStr)
			skipped++
			continue
		}

		var originalPrice *int64
		if originalPriceStr != "" {
			if v, err := strconv.ParseInt(originalPriceStr, 10, 64); err == nil && v > 0 {
				originalPrice = &v
			}
		}

		rating := 0.0
		if ratingStr != "" {
			if v, err := strconv.ParseFloat(ratingStr, 64); err == nil {
				rating = v
			}
		}

		isNew := strings.EqualFold(isNewStr, "true") || isNewStr == "1"

		seen[name] = true
		products = append(products, model.Product{
			Name:          name,
			Description:   description,
			Price:         price,
			OriginalPrice: originalPrice,
			Category:      category,
			ImageURL:      imageURL,
			Rating:        rating,
			IsNew:         isNew,
			Builtin:       true,
			TopNotes:      topNotes,
			HeartNotes:    heartNotes,
			BaseNotes:     baseNotes,
		})
	}

	return products, skipped, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseNotes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	notes := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			notes = append(notes, trimmed)
		}
	}
	return notes
}
