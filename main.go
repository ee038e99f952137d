package main

import (
	"flag"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"kassensystem/config"
	"kassensystem/controllers"
	"kassensystem/repository"
	"kassensystem/routes"
	"kassensystem/seed"
	"kassensystem/service"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	seedData := flag.Bool("seed", false, "wipe the database, fill it with demo data and exit")
	flag.Parse()

	dbPath := getEnv("DB_PATH", "./kasse.db")
	db, err := config.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	products := repository.NewSQLiteProductRepository(db)
	sales := repository.NewSQLiteSaleRepository(db)

	if *seedData {
		if err := seed.Run(db, products, sales); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Println("Database seeded with demo data.")
		return
	}

	if err := seed.EnsureDemoProducts(products); err != nil {
		log.Fatalf("Failed to create starter products: %v", err)
	}

	checkoutSvc := service.NewCheckoutService(products, sales)
	statsSvc := service.NewStatisticsService(db)

	router := gin.Default()
	routes.RegisterRoutes(router,
		controllers.NewProductController(checkoutSvc),
		controllers.NewCheckoutController(checkoutSvc),
		controllers.NewStatisticsController(statsSvc))

	port := getEnv("PORT", "8080")
	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
