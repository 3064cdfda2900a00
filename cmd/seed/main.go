// Seeds a demo catalog through the remote inventory API.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mquispe/bodegapos/internal/adapter/gateway"
	"github.com/mquispe/bodegapos/internal/core/domain"
)

const defaultAPIBaseURL = "http://localhost:9090"

func main() {
	baseURL := os.Getenv("POS_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := gateway.NewClient(baseURL, nil)
	products := client.Products()
	categories := client.Categories()

	categoryNames := []string{"Abarrotes", "Bebidas", "Limpieza"}
	created := make(map[string]domain.Category, len(categoryNames))
	for _, name := range categoryNames {
		c, err := categories.Create(ctx, domain.Category{Name: name})
		if err != nil {
			log.Fatalf("create category %q: %v", name, err)
		}
		created[name] = c
		log.Printf("category %q -> id %d", c.Name, c.ID)
	}

	seed := []struct {
		name     string
		stock    int
		price    string
		category string
	}{
		{"Arroz Costeño 1kg", 40, "4.50", "Abarrotes"},
		{"Aceite Primor 1L", 25, "9.90", "Abarrotes"},
		{"Azúcar Rubia 1kg", 30, "3.80", "Abarrotes"},
		{"Inca Kola 1.5L", 18, "7.50", "Bebidas"},
		{"Agua San Luis 625ml", 60, "1.50", "Bebidas"},
		{"Cerveza Cusqueña 620ml", 0, "8.90", "Bebidas"},
		{"Detergente Bolívar 780g", 12, "12.90", "Limpieza"},
		{"Lejía Clorox 1L", 20, "5.20", "Limpieza"},
	}

	for _, item := range seed {
		cat := created[item.category]
		p, err := products.Create(ctx, domain.Product{
			Name:     item.name,
			Stock:    item.stock,
			Price:    decimal.RequireFromString(item.price),
			Category: &cat,
		})
		if err != nil {
			log.Fatalf("create product %q: %v", item.name, err)
		}
		log.Printf("product %q -> id %d", p.Name, p.ID)
	}

	log.Printf("seeded %d categories, %d products", len(categoryNames), len(seed))
}
