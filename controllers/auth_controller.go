package controllers

import (
	"net/http"
	"time"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Username dan password wajib diisi")
		return
	}

	var user models.User
	if err := config.DB.Where("username = ? AND is_active = true", in.Username).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Username atau password salah")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "Username atau password salah")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, string(user.Role), 24*time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	config.DB.Model(&user).UpdateColumn("last_login_at", now)

	utils.Success(c, gin.H{"token": token, "user": user})
}

func Profile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, user)
}
