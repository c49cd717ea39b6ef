package service

import (
	"errors"

	"github.com/usefulcoin6611/hpc-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Satu-satunya tempat sisa qty unit dihitung. Semua layar (form barang
// keluar, pencarian no seri, laporan) lewat sini supaya invariannya
// ditegakkan di satu titik.

// AvailableQty = jumlah detail barang masuk asal unit dikurangi semua
// reservasi barang keluar terhadap unit tsb.
func AvailableQty(tx *gorm.DB, unitID uint) (int, error) {
	var unit models.DetailBarangMasukNoSeri
	if err := tx.First(&unit, unitID).Error; err != nil {
		return 0, err
	}

	var detail models.BarangMasukDetail
	if err := tx.First(&detail, unit.BarangMasukDetailID).Error; err != nil {
		return 0, err
	}

	var dipakai int64
	if err := tx.Model(&models.BarangKeluarDetail{}).
		Where("detail_barang_masuk_no_seri_id = ?", unitID).
		Select("COALESCE(SUM(jumlah), 0)").
		Scan(&dipakai).Error; err != nil {
		return 0, err
	}

	sisa := detail.Jumlah - int(dipakai)
	if sisa < 0 {
		// invariannya sudah jebol di data; jangan diperparah
		return 0, errors.New("sisa qty negatif, data reservasi tidak konsisten")
	}
	return sisa, nil
}

// LockUnit mengunci row unit FOR UPDATE lalu mengembalikannya. Dipakai
// sebelum cek AvailableQty supaya dua reservasi paralel tidak sama-sama
// lolos.
func LockUnit(tx *gorm.DB, unitID uint) (*models.DetailBarangMasukNoSeri, error) {
	var unit models.DetailBarangMasukNoSeri
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&unit, unitID).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// NoSeriCandidate adalah baris hasil pencarian no seri untuk form barang
// keluar: unit dari header berstatus diterima yang sisa qty-nya masih > 0.
type NoSeriCandidate struct {
	UnitID   uint   `json:"unitId"`
	NoSeri   string `json:"noSeri"`
	Lokasi   string `json:"lokasi"`
	BarangID uint   `json:"barangId"`
	Nama     string `json:"namaBarang"`
	Kode     string `json:"kodeBarang"`
	Sisa     int    `json:"sisaQty"`
}

// SearchNoSeri adalah lookup read-side untuk autocomplete, tidak dipakai
// di jalur tulis.
func SearchNoSeri(db *gorm.DB, search string, limit int) ([]NoSeriCandidate, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	q := db.Table("detail_barang_masuk_no_seris AS ns").
		Select(`
			ns.id AS unit_id,
			ns.no_seri,
			ns.lokasi,
			b.id AS barang_id,
			b.nama,
			b.kode,
			d.jumlah - COALESCE(SUM(bk.jumlah), 0) AS sisa
		`).
		Joins("INNER JOIN barang_masuk_details d ON d.id = ns.barang_masuk_detail_id").
		Joins("INNER JOIN barang_masuks h ON h.id = d.barang_masuk_id").
		Joins("INNER JOIN barangs b ON b.id = d.barang_id").
		Joins("LEFT JOIN barang_keluar_details bk ON bk.detail_barang_masuk_no_seri_id = ns.id AND bk.deleted_at IS NULL").
		Where("h.status = ? AND h.deleted_at IS NULL AND ns.deleted_at IS NULL", models.StatusDiterima).
		Group("ns.id, ns.no_seri, ns.lokasi, b.id, b.nama, b.kode, d.jumlah").
		Having("d.jumlah - COALESCE(SUM(bk.jumlah), 0) > 0").
		Order("ns.no_seri ASC").
		Limit(limit)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("ns.no_seri ILIKE ? OR b.nama ILIKE ?", like, like)
	}

	var rows []NoSeriCandidate
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
