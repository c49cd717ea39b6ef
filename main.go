package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/middlewares"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/routes"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, pakai environment langsung")
	}

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Barang{},
		&models.BarangMasuk{},
		&models.BarangMasukDetail{},
		&models.DetailBarangMasukNoSeri{},
		&models.BarangKeluar{},
		&models.BarangKeluarDetail{},
		&models.Transaksi{},
		&models.TransaksiItem{},
	); err != nil {
		log.Fatalf("AutoMigrate gagal: %v", err)
	}

	config.SeedAdmin()

	// override secret dari ENV
	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	zapLogger := newLogger()
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.Logger(zapLogger))
	r.Use(cors.New(corsConfig()))

	routes.SetupRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server gagal jalan: %v", err)
	}
}

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if gin.Mode() == gin.ReleaseMode {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Gagal init logger: %v", err)
	}
	return logger
}

func corsConfig() cors.Config {
	origins := []string{"http://localhost:3000"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
