package config

import (
	"log"
	"os"

	"github.com/usefulcoin6611/hpc-sub000/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin membuat user admin pertama kalau tabel user masih kosong.
// Idempotent, aman dipanggil tiap boot.
func SeedAdmin() {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Gagal cek tabel user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_INITIAL_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Gagal hash password admin: %v", err)
		return
	}

	admin := models.User{
		Name:         "Administrator",
		Username:     "admin",
		Email:        "admin@localhost",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Gagal seed admin: %v", err)
		return
	}
	log.Println("Seed user admin selesai (username: admin)")
}
