package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/service"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BarangKeluarItemInput struct {
	BarangID                  uint `json:"barangId"`
	DetailBarangMasukNoSeriID uint `json:"detailBarangMasukNoSeriId"`
	Jumlah                    int  `json:"jumlah"`
}

type BarangKeluarInput struct {
	ID         uint                    `json:"id"`
	Tanggal    time.Time               `json:"tanggal"`
	Tujuan     string                  `json:"tujuan"`
	DeliveryNo string                  `json:"deliveryNo"`
	ShipVia    string                  `json:"shipVia"`
	Keterangan string                  `json:"keterangan"`
	Status     string                  `json:"status"`
	Items      []BarangKeluarItemInput `json:"items"`
}

func GetAllBarangKeluar(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	q := config.DB.Model(&models.BarangKeluar{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("tujuan ILIKE ? OR delivery_no ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}

	var rows []models.BarangKeluar
	if err := q.
		Preload("Details.Barang").
		Preload("Details.NoSeri").
		Order("tanggal DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		respondError(c, err)
		return
	}

	utils.Paginated(c, rows, page, limit, total)
}

// SearchNoSeri: autocomplete form barang keluar. Murni read-side, jalur
// tulis tetap menghitung ulang sisa qty dengan lock.
func SearchNoSeri(c *gin.Context) {
	rows, err := service.SearchNoSeri(config.DB, strings.TrimSpace(c.Query("search")), 20)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, rows)
}

func validateHeaderBarangKeluar(in *BarangKeluarInput) error {
	if in.Tanggal.IsZero() {
		return validationErr("Validasi", "Tanggal wajib diisi")
	}
	if strings.TrimSpace(in.Tujuan) == "" {
		return validationErr("Validasi", "Tujuan wajib diisi")
	}
	if len(in.Items) == 0 {
		return validationErr("Validasi", "Minimal satu baris barang harus diisi")
	}
	if in.Status == "" {
		in.Status = "pending"
	}
	return nil
}

// buatDetailBarangKeluar mereservasi tiap item terhadap unitnya. Row unit
// dikunci dulu baru sisa qty dihitung, supaya dua reservasi paralel tidak
// sama-sama lolos cek.
func buatDetailBarangKeluar(tx *gorm.DB, headerID uint, items []BarangKeluarItemInput) error {
	for _, it := range items {
		if it.Jumlah <= 0 {
			return validationErr("Validasi", "Jumlah harus lebih dari 0")
		}
		if it.DetailBarangMasukNoSeriID == 0 {
			return validationErr("Validasi", "No seri wajib dipilih untuk setiap baris")
		}

		unit, err := service.LockUnit(tx, it.DetailBarangMasukNoSeriID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErr("Validasi", "No seri tidak ditemukan")
			}
			return err
		}

		sisa, err := service.AvailableQty(tx, unit.ID)
		if err != nil {
			return err
		}
		if it.Jumlah > sisa {
			return validationErr("Jumlah melebihi sisa",
				fmt.Sprintf("Jumlah untuk no seri %s melebihi sisa qty (sisa %d)", unit.NoSeri, sisa))
		}

		// barang diturunkan dari detail asal unit; kalau caller mengirim
		// barangId yang beda berarti form-nya tidak konsisten
		var asal models.BarangMasukDetail
		if err := tx.First(&asal, unit.BarangMasukDetailID).Error; err != nil {
			return err
		}
		if it.BarangID != 0 && it.BarangID != asal.BarangID {
			return validationErr("Validasi",
				fmt.Sprintf("Barang tidak cocok dengan no seri %s", unit.NoSeri))
		}

		detail := models.BarangKeluarDetail{
			BarangKeluarID:            headerID,
			BarangID:                  asal.BarangID,
			DetailBarangMasukNoSeriID: unit.ID,
			Jumlah:                    it.Jumlah,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return err
		}
	}
	return nil
}

func CreateBarangKeluar(c *gin.Context) {
	var in BarangKeluarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "Payload tidak valid")
		return
	}
	if err := validateHeaderBarangKeluar(&in); err != nil {
		respondError(c, err)
		return
	}

	var header models.BarangKeluar
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		header = models.BarangKeluar{
			Tanggal:    in.Tanggal,
			Tujuan:     in.Tujuan,
			DeliveryNo: in.DeliveryNo,
			ShipVia:    in.ShipVia,
			Keterangan: in.Keterangan,
			Status:     in.Status,
		}
		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		return buatDetailBarangKeluar(tx, header.ID, in.Items)
	})

	if txErr != nil {
		respondError(c, txErr)
		return
	}

	if err := config.DB.
		Preload("Details.Barang").
		Preload("Details.NoSeri").
		First(&header, header.ID).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, header)
}

func UpdateBarangKeluar(c *gin.Context) {
	var in BarangKeluarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "Payload tidak valid")
		return
	}
	if in.ID == 0 {
		utils.ValidationError(c, "Validasi", "ID wajib diisi")
		return
	}
	if err := validateHeaderBarangKeluar(&in); err != nil {
		respondError(c, err)
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var header models.BarangKeluar
		if err := tx.First(&header, in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("Transaksi barang keluar tidak ditemukan")
			}
			return err
		}

		// reservasi lama dilepas dulu; sisa qty lalu dihitung tanpa
		// menghitung reservasi milik header ini sendiri
		if err := tx.Unscoped().
			Where("barang_keluar_id = ?", header.ID).
			Delete(&models.BarangKeluarDetail{}).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"tanggal":     in.Tanggal,
			"tujuan":      in.Tujuan,
			"delivery_no": in.DeliveryNo,
			"ship_via":    in.ShipVia,
			"keterangan":  in.Keterangan,
			"status":      in.Status,
		}
		if err := tx.Model(&header).Updates(updates).Error; err != nil {
			return err
		}

		return buatDetailBarangKeluar(tx, header.ID, in.Items)
	})

	if txErr != nil {
		respondError(c, txErr)
		return
	}

	var header models.BarangKeluar
	if err := config.DB.
		Preload("Details.Barang").
		Preload("Details.NoSeri").
		First(&header, in.ID).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, header)
}

func DeleteBarangKeluar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid")
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var header models.BarangKeluar
		if err := tx.First(&header, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("Transaksi barang keluar tidak ditemukan")
			}
			return err
		}
		if err := tx.Unscoped().
			Where("barang_keluar_id = ?", header.ID).
			Delete(&models.BarangKeluarDetail{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&header).Error
	})

	if txErr != nil {
		respondError(c, txErr)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
