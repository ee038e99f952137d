package seed

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"kassensystem/models"
	"kassensystem/repository"
)

var productNames = []string{
	"Apfel", "Banane", "Orange", "Birne", "Trauben", "Ananas", "Mango", "Kiwi",
	"Erdbeeren", "Himbeeren", "Blaubeeren", "Kirschen", "Pfirsich", "Pflaume",
	"Brot", "Weißbrot", "Vollkornbrot", "Brötchen", "Croissant", "Bagel",
	"Milch", "Joghurt", "Quark", "Käse", "Butter", "Sahne", "Frischkäse",
	"Hackfleisch", "Hähnchenbrust", "Rinderfilet", "Schweinefilet", "Lachs",
	"Thunfisch", "Garnelen", "Forelle", "Kabeljau", "Sardinen",
	"Kartoffeln", "Zwiebeln", "Karotten", "Paprika", "Tomaten", "Gurken",
	"Salat", "Spinat", "Brokkoli", "Blumenkohl", "Zucchini", "Aubergine",
	"Reis", "Nudeln", "Spaghetti", "Penne", "Fusilli", "Linsen", "Bohnen",
	"Kichererbsen", "Quinoa", "Haferflocken", "Müsli", "Cornflakes",
	"Coca Cola", "Pepsi", "Fanta", "Sprite", "Wasser", "Sprudelwasser",
	"Orangensaft", "Apfelsaft", "Multivitaminsaft", "Tee", "Kaffee",
	"Bier", "Wein", "Sekt", "Whisky", "Vodka", "Rum",
	"Schokolade", "Kekse", "Chips", "Nüsse", "Gummibärchen", "Bonbons",
	"Eis", "Tiefkühlpizza", "Pommes", "Fischstäbchen", "Gemüsemix",
	"Shampoo", "Duschgel", "Zahnpasta", "Seife", "Deo", "Creme",
	"Windeln", "Babybrei", "Babynahrung", "Spielzeug", "Schnuller",
	"Batterien", "Glühbirne", "Kerzen", "Feuerzeug", "Streichhölzer",
}

var categories = []string{
	"Obst", "Gemüse", "Backwaren", "Milchprodukte", "Fleisch", "Fisch",
	"Getränke", "Süßwaren", "Tiefkühl", "Drogerie", "Baby", "Haushalt",
}

// EnsureDemoProducts inserts a handful of starter products when the
// store is empty, so a fresh register is usable right away.
func EnsureDemoProducts(products repository.ProductRepository) error {
	existing, err := products.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demo := []models.Product{
		{Name: "Apfel", Price: 0.50, Stock: 100},
		{Name: "Banane", Price: 0.30, Stock: 80},
		{Name: "Brot", Price: 2.50, Stock: 20},
		{Name: "Milch", Price: 1.20, Stock: 15},
		{Name: "Käse", Price: 4.99, Stock: 10},
	}
	for i := range demo {
		if err := products.Create(&demo[i]); err != nil {
			return err
		}
	}
	return nil
}

// Run wipes all data and loads 100 demo products plus up to 100 sales
// spread over the last week. Sales decrement the stock of the sold
// product the same way a real checkout does.
func Run(db *sql.DB, products repository.ProductRepository, sales repository.SaleRepository) error {
	if err := wipe(db); err != nil {
		return err
	}

	created := make([]models.Product, 0, 100)
	for i := 0; i < 100; i++ {
		p := models.Product{
			Name:  productName(i),
			Price: demoPrice(),
			Stock: 5 + rand.Intn(196),
		}
		if err := products.Create(&p); err != nil {
			return fmt.Errorf("could not create demo product %q: %w", p.Name, err)
		}
		created = append(created, p)
	}
	log.Printf("created %d demo products", len(created))

	count := 0
	for i := 0; i < 100; i++ {
		p := &created[rand.Intn(len(created))]
		quantity := 1 + rand.Intn(5)
		if !p.IsAvailable(quantity) {
			continue
		}

		sale := models.Sale{
			Timestamp:   randomTimestamp(),
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    quantity,
			UnitPrice:   p.Price,
			LineTotal:   float64(quantity) * p.Price,
		}
		if err := sales.Save(&sale); err != nil {
			return fmt.Errorf("could not create demo sale: %w", err)
		}

		p.DecreaseStock(quantity)
		if err := products.UpdateStock(p.ID, p.Stock); err != nil {
			return fmt.Errorf("could not update stock of %q: %w", p.Name, err)
		}
		count++
	}
	log.Printf("created %d demo sales", count)
	return nil
}

// wipe deletes all rows and resets the autoincrement counters. Sales go
// first because of the foreign key on products.
func wipe(db *sql.DB) error {
	stmts := []string{
		"DELETE FROM sales",
		"DELETE FROM products",
		"DELETE FROM sqlite_sequence WHERE name IN ('products', 'sales')",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not wipe existing data: %w", err)
		}
	}
	return nil
}

func productName(i int) string {
	if i < len(productNames) {
		return productNames[i]
	}
	base := productNames[i%len(productNames)]
	category := categories[rand.Intn(len(categories))]
	return fmt.Sprintf("%s %s %d", base, category, i-len(productNames)+1)
}

// demoPrice returns a price between 0,30€ and 19,99€.
func demoPrice() float64 {
	cents := 30 + rand.Intn(1970)
	return float64(cents) / 100
}

func randomTimestamp() time.Time {
	offset := time.Duration(rand.Intn(7*24*60)) * time.Minute
	return time.Now().Add(-offset)
}
