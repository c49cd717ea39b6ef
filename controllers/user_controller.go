package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JobType  string `json:"jobType"`
	Password string `json:"password"`
	IsActive *bool  `json:"isActive"`
}

func GetAllUsers(c *gin.Context) {
	q := config.DB.Model(&models.User{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR username ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, users)
}

func CreateUser(c *gin.Context) {
	var in UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "Payload tidak valid")
		return
	}
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Name) == "" || in.Password == "" {
		utils.ValidationError(c, "Validasi", "Nama, username dan password wajib diisi")
		return
	}

	role, err := models.ParseRole(in.Role)
	if err != nil {
		utils.ValidationError(c, "Validasi", err.Error())
		return
	}

	var exist models.User
	if err := config.DB.Where("username = ?", in.Username).First(&exist).Error; err == nil {
		utils.ValidationError(c, "Duplikat", "Username sudah digunakan")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		Role:         role,
		JobType:      in.JobType,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := config.DB.Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, user)
}

func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User tidak ditemukan")
		return
	}

	var in UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "Payload tidak valid")
		return
	}

	updates := map[string]interface{}{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}
	if in.JobType != "" {
		updates["job_type"] = in.JobType
	}
	if in.Role != "" {
		role, err := models.ParseRole(in.Role)
		if err != nil {
			utils.ValidationError(c, "Validasi", err.Error())
			return
		}
		updates["role"] = role
	}
	if in.Username != "" && in.Username != user.Username {
		var exist models.User
		if err := config.DB.Where("username = ?", in.Username).First(&exist).Error; err == nil {
			utils.ValidationError(c, "Duplikat", "Username sudah digunakan")
			return
		}
		updates["username"] = in.Username
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, err)
			return
		}
		updates["password_hash"] = string(hash)
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, user)
}

func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid")
		return
	}

	uid, _ := currentUserID(c)
	if uint(id) == uid {
		utils.ValidationError(c, "Validasi", "Tidak bisa menghapus akun sendiri")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User tidak ditemukan")
		return
	}

	// nonaktifkan, bukan hard delete; nama user masih direferensikan
	// audit field lembar kerja
	if err := config.DB.Model(&user).UpdateColumn("is_active", false).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"deactivated": user.ID})
}
