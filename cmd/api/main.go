package main

import (
	"log"
	"os"
	"time"

	"github.com/shadow2411/psfoundation/internal/contact"
	"github.com/shadow2411/psfoundation/internal/db"
	"github.com/shadow2411/psfoundation/internal/order"
	"github.com/shadow2411/psfoundation/internal/pricing"
	"github.com/shadow2411/psfoundation/internal/site"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"CONTACT_API_KEY",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── RATE CARD ─────────────────────────
	pricingFile := os.Getenv("PRICING_FILE")
	if pricingFile == "" {
		pricingFile = "config/pricing.json"
	}

	rates, err := pricing.Load(pricingFile)
	if err != nil {
		log.Fatalf("Failed to load rate card from %s: %v", pricingFile, err)
	}
	log.Printf("Rate card loaded: %d regions", len(rates.Regions()))

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── TIFFIN ORDERS ─────────────────────────
	orderRepo := order.NewPostgresRepository(pgDB)
	orderService := order.NewService(orderRepo, rates)
	orderHandler := order.NewHandler(orderService)

	tiffins := r.Group("/tiffins")
	{
		tiffins.POST("", orderHandler.Register)
		tiffins.GET("", orderHandler.ListAll)
		tiffins.GET("/active", orderHandler.ListActive)
		tiffins.POST("/:id/payment", orderHandler.MarkPaid)
	}

	// ───────────────────────── PRICING ─────────────────────────
	pricingHandler := pricing.NewHandler(rates)

	pricingGroup := r.Group("/pricing")
	{
		pricingGroup.GET("/regions", pricingHandler.ListRegions)
		pricingGroup.GET("/quote", pricingHandler.Quote)
	}

	// ───────────────────────── CONTACT ─────────────────────────
	mailClient := contact.NewClient()
	contactService := contact.NewService(mailClient)
	contactHandler := contact.NewHandler(contactService)

	r.POST("/contact", contactHandler.Submit)

	// ───────────────────────── SITE CONTENT ─────────────────────────
	siteHandler := site.NewHandler()

	siteGroup := r.Group("/site")
	{
		siteGroup.GET("/home", siteHandler.Home)
		siteGroup.GET("/about", siteHandler.About)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
