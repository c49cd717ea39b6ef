package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/service"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TransaksiItemInput struct {
	Parameter  string `json:"parameter"`
	Hasil      bool   `json:"hasil"`
	PDI        bool   `json:"pdi"`
	Aktual     string `json:"aktual"`
	Standar    string `json:"standar"`
	Keterangan string `json:"keterangan"`
}

type TransaksiInput struct {
	NoSeri         string               `json:"noSeri"`
	JenisPekerjaan string               `json:"jenisPekerjaan"`
	Keterangan     string               `json:"keterangan"`
	Staff          string               `json:"staff"`
	Versi          int                  `json:"versi"`
	LokasiBaru     string               `json:"lokasiBaru"`
	Items          []TransaksiItemInput `json:"items"`
}

// NoFormPindah: nomor form pindah lokasi, deterministik dari no seri + tahun.
func NoFormPindah(noSeri string, year int) string {
	return fmt.Sprintf("PL/V1/%s/%d", noSeri, year)
}

func findUnitByNoSeri(db *gorm.DB, noSeri string) (*models.DetailBarangMasukNoSeri, error) {
	var unit models.DetailBarangMasukNoSeri
	if err := db.Where("no_seri = ?", noSeri).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr(fmt.Sprintf("No seri %s tidak ditemukan", noSeri))
		}
		return nil, err
	}
	return &unit, nil
}

// GetTransaksi mengembalikan lembar kerja tersimpan apa adanya. Kalau
// belum pernah disimpan, dikembalikan record transient hasil seed
// checklist default; setelah tersimpan TIDAK pernah di-merge ulang
// dengan default.
func GetTransaksi(c *gin.Context) {
	noSeri := strings.TrimSpace(c.Query("noSeri"))
	if noSeri == "" {
		utils.ValidationError(c, "Validasi", "noSeri wajib diisi")
		return
	}
	jenis, err := models.ParseJenisPekerjaan(c.Query("jenisPekerjaan"))
	if err != nil {
		utils.ValidationError(c, "Validasi", err.Error())
		return
	}

	unit, err := findUnitByNoSeri(config.DB, noSeri)
	if err != nil {
		respondError(c, err)
		return
	}

	var record models.Transaksi
	err = config.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		Where("no_seri = ? AND jenis_pekerjaan = ?", noSeri, jenis).
		First(&record).Error
	if err == nil {
		utils.Success(c, record)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	record = models.Transaksi{
		NoSeri:         noSeri,
		JenisPekerjaan: jenis,
		Items:          service.DefaultChecklist(jenis),
	}
	if jenis == models.JenisPindahLokasi {
		record.LokasiAwal = unit.Lokasi
		record.NoFormPindah = NoFormPindah(noSeri, time.Now().Year())
	}
	utils.Success(c, record)
}

// bolehEditTransaksi: lembar kerja hanya boleh diedit staff dengan role
// yang sama dengan tahapannya; admin dan supervisor lolos.
func bolehEditTransaksi(role models.Role, jenis models.JenisPekerjaan) bool {
	if role.IsApprover() {
		return true
	}
	return string(role) == string(jenis)
}

func SaveTransaksi(c *gin.Context) {
	var in TransaksiInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "Payload tidak valid")
		return
	}

	jenis, err := models.ParseJenisPekerjaan(in.JenisPekerjaan)
	if err != nil {
		utils.ValidationError(c, "Validasi", err.Error())
		return
	}
	if strings.TrimSpace(in.NoSeri) == "" {
		utils.ValidationError(c, "Validasi", "noSeri wajib diisi")
		return
	}

	if !bolehEditTransaksi(currentRole(c), jenis) {
		utils.Error(c, 403, "Role tidak boleh mengisi lembar kerja ini")
		return
	}

	var saved models.Transaksi
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		unit, err := findUnitByNoSeri(tx, in.NoSeri)
		if err != nil {
			return err
		}

		if jenis == models.JenisPindahLokasi {
			return savePindahLokasi(tx, &in, unit, c, &saved)
		}
		return saveChecklist(tx, &in, jenis, c, &saved)
	})

	if txErr != nil {
		respondError(c, txErr)
		return
	}

	if err := config.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		First(&saved, saved.ID).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, saved)
}

func saveChecklist(tx *gorm.DB, in *TransaksiInput, jenis models.JenisPekerjaan, c *gin.Context, out *models.Transaksi) error {
	// baris dengan parameter blank dibuang diam-diam sebelum simpan
	items := make([]models.TransaksiItem, 0, len(in.Items))
	for _, it := range in.Items {
		if strings.TrimSpace(it.Parameter) == "" {
			continue
		}
		items = append(items, models.TransaksiItem{
			Urutan:     len(items) + 1,
			Parameter:  it.Parameter,
			Hasil:      it.Hasil,
			PDI:        it.PDI,
			Aktual:     it.Aktual,
			Standar:    it.Standar,
			Keterangan: it.Keterangan,
		})
	}
	if len(items) == 0 {
		return validationErr("Validasi", "Checklist kosong, minimal satu parameter harus diisi")
	}

	var record models.Transaksi
	err := tx.Where("no_seri = ? AND jenis_pekerjaan = ?", in.NoSeri, jenis).First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.Transaksi{
			NoSeri:         in.NoSeri,
			JenisPekerjaan: jenis,
			Keterangan:     in.Keterangan,
			PIC:            currentUserName(c),
			Staff:          in.Staff,
			Versi:          1,
			Items:          items,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if in.Versi != record.Versi {
			return conflictErr("Lembar kerja sudah diubah pengguna lain, muat ulang dulu")
		}
		if err := tx.Unscoped().
			Where("transaksi_id = ?", record.ID).
			Delete(&models.TransaksiItem{}).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"keterangan": in.Keterangan,
			"staff":      in.Staff,
			"versi":      record.Versi + 1,
		}
		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].TransaksiID = record.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
	}

	*out = record
	return nil
}

// savePindahLokasi: kasus degenerate, bukan checklist. Lokasi baru wajib
// beda dari lokasi unit sekarang; lokasi unit ikut dipindah di transaksi
// yang sama.
func savePindahLokasi(tx *gorm.DB, in *TransaksiInput, unit *models.DetailBarangMasukNoSeri, c *gin.Context, out *models.Transaksi) error {
	lokasiBaru := strings.TrimSpace(in.LokasiBaru)
	if lokasiBaru == "" {
		return validationErr("Validasi", "Lokasi baru wajib diisi")
	}
	if lokasiBaru == unit.Lokasi {
		return validationErr("Validasi", "Lokasi baru harus berbeda dari lokasi sekarang")
	}

	var record models.Transaksi
	err := tx.Where("no_seri = ? AND jenis_pekerjaan = ?", in.NoSeri, models.JenisPindahLokasi).
		First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.Transaksi{
			NoSeri:         in.NoSeri,
			JenisPekerjaan: models.JenisPindahLokasi,
			Keterangan:     in.Keterangan,
			PIC:            currentUserName(c),
			Staff:          in.Staff,
			Versi:          1,
			LokasiAwal:     unit.Lokasi,
			LokasiBaru:     lokasiBaru,
			NoFormPindah:   NoFormPindah(in.NoSeri, time.Now().Year()),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if in.Versi != record.Versi {
			return conflictErr("Lembar kerja sudah diubah pengguna lain, muat ulang dulu")
		}
		updates := map[string]interface{}{
			"keterangan":     in.Keterangan,
			"staff":          in.Staff,
			"versi":          record.Versi + 1,
			"lokasi_awal":    unit.Lokasi,
			"lokasi_baru":    lokasiBaru,
			"no_form_pindah": NoFormPindah(in.NoSeri, time.Now().Year()),
		}
		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return err
		}
	}

	if err := tx.Model(unit).UpdateColumn("lokasi", lokasiBaru).Error; err != nil {
		return err
	}

	*out = record
	return nil
}
