package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
)

// Input master barang sengaja tidak punya field stok: stok hanya digeser
// oleh proses barang masuk/keluar.
type BarangInput struct {
	Kode     string `json:"kode" binding:"required"`
	Nama     string `json:"nama" binding:"required"`
	Satuan   string `json:"satuan"`
	IsActive *bool  `json:"isActive"`
}

func GetAllBarang(c *gin.Context) {
	q := config.DB.Model(&models.Barang{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("nama ILIKE ? OR kode ILIKE ?", like, like)
	}

	var barangs []models.Barang
	if err := q.Order("kode ASC").Find(&barangs).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, barangs)
}

func GetBarangByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid")
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Barang tidak ditemukan")
		return
	}
	utils.Success(c, barang)
}

func CreateBarang(c *gin.Context) {
	var in BarangInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Data tidak valid", "Kode dan nama barang wajib diisi")
		return
	}

	var exist models.Barang
	if err := config.DB.Where("kode = ?", in.Kode).First(&exist).Error; err == nil {
		utils.ValidationError(c, "Duplikat", "Kode barang sudah digunakan")
		return
	}

	barang := models.Barang{
		Kode:     in.Kode,
		Nama:     in.Nama,
		Satuan:   in.Satuan,
		IsActive: true,
	}
	if in.IsActive != nil {
		barang.IsActive = *in.IsActive
	}

	if err := config.DB.Create(&barang).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, barang)
}

func UpdateBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid")
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Barang tidak ditemukan")
		return
	}

	var in BarangInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Data tidak valid", "Kode dan nama barang wajib diisi")
		return
	}

	if in.Kode != barang.Kode {
		var exist models.Barang
		if err := config.DB.Where("kode = ?", in.Kode).First(&exist).Error; err == nil {
			utils.ValidationError(c, "Duplikat", "Kode barang sudah digunakan")
			return
		}
	}

	updates := map[string]interface{}{
		"kode":   in.Kode,
		"nama":   in.Nama,
		"satuan": in.Satuan,
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if err := config.DB.Model(&barang).Updates(updates).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, barang)
}

func DeleteBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid")
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Barang tidak ditemukan")
		return
	}

	var refs int64
	if err := config.DB.Model(&models.BarangMasukDetail{}).
		Where("barang_id = ?", barang.ID).Count(&refs).Error; err != nil {
		respondError(c, err)
		return
	}
	if refs > 0 {
		utils.ValidationError(c, "Tidak bisa dihapus",
			"Barang sudah dipakai transaksi barang masuk, nonaktifkan saja")
		return
	}

	if err := config.DB.Delete(&barang).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": barang.ID})
}
