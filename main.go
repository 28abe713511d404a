// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"sekolahku_backend/internals/configs"
	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/middlewares"
	"sekolahku_backend/internals/route"
)

func main() {
	// 1) ENV + koneksi DB
	configs.LoadEnv()
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 2) Fiber app - sonic untuk encode/decode JSON
	app := fiber.New(fiber.Config{
		AppName:      "Sekolahku Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// 3) Middleware global
	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// 4) Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 5) Routes
	route.SetupRoutes(app, database.DB)

	// 6) Start + graceful shutdown
	port := configs.GetEnv("PORT", "8080")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Gagal start server: %v", err)
		}
	}()
	log.Printf("🚀 Server jalan di port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⚠️ Shutdown signal diterima, menutup server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Shutdown tidak mulus: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server berhenti dengan rapi")
}
