package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fikrirozi147/halal-checker-backend/internal/auth"
	"github.com/fikrirozi147/halal-checker-backend/internal/catalogue"
	"github.com/fikrirozi147/halal-checker-backend/internal/db"
	"github.com/fikrirozi147/halal-checker-backend/internal/ocr"
	"github.com/fikrirozi147/halal-checker-backend/internal/router"
	"github.com/fikrirozi147/halal-checker-backend/internal/scan"
	"github.com/fikrirozi147/halal-checker-backend/internal/storage"

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
		"JWT_SECRET",
		"ADMIN_EMAIL",
		"ADMIN_PASSWORD",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── CATALOGUE SOURCE ─────────────────────────
	// Postgres when DATABASE_URL is set, else R2 when a bucket is
	// configured, else the local ingredients.json file.
	var (
		catalogueRepo catalogue.Repository
		adminRepo     auth.AdminRepository
	)

	switch {
	case os.Getenv("DATABASE_URL") != "":
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		catalogueRepo = catalogue.NewPostgresRepository(pgDB)
		adminRepo = auth.NewPostgresAdminRepository(pgDB)

	case os.Getenv("R2_BUCKET_NAME") != "":
		r2Client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		key := os.Getenv("CATALOGUE_OBJECT_KEY")
		if key == "" {
			key = "ingredients.json"
		}
		catalogueRepo = catalogue.NewR2Repository(r2Client, key)
		adminRepo = auth.NewInMemoryAdminRepository()

	default:
		path := os.Getenv("INGREDIENTS_FILE")
		if path == "" {
			path = "ingredients.json"
		}
		catalogueRepo = catalogue.NewFileRepository(path)
		adminRepo = auth.NewInMemoryAdminRepository()
	}

	catalogueStore, err := catalogue.NewStore(ctx, catalogueRepo)
	if err != nil {
		log.Fatal("❌ Catalogue load failed:", err)
	}

	// ───────────────────────── OCR MODELS ─────────────────────────
	// Loaded once, shared read-only across all requests.
	pool, err := ocr.NewTesseractPool()
	if err != nil {
		log.Fatal("❌ OCR init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(adminRepo)
	if _, err := authService.SeedAdmin(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal("❌ Admin seed failed:", err)
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HANDLERS ─────────────────────────
	scanService := scan.NewService(ocr.NewExtractor(pool), catalogueStore)

	router.New(
		r,
		scan.NewHandler(scanService),
		catalogue.NewHandler(catalogueStore),
		auth.NewHandler(authService),
	)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
