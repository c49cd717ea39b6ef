package models

import (
	"time"

	"gorm.io/gorm"
)

// Status header barang masuk. "diterima" yang membuat no seri ikut muncul
// di pencarian barang keluar.
const (
	StatusDiterima = "diterima"
	StatusPending  = "pending"
)

type BarangMasuk struct {
	gorm.Model
	Tanggal        time.Time           `json:"tanggal"`
	KodeKedatangan string              `json:"kodeKedatangan" gorm:"uniqueIndex;size:60"`
	NoForm         string              `json:"noForm" gorm:"uniqueIndex;size:60"`
	NamaSupplier   string              `json:"namaSupplier" gorm:"size:180"`
	Status         string              `json:"status" gorm:"size:30;default:diterima"`
	IsActive       bool                `json:"isActive" gorm:"default:true"`
	Details        []BarangMasukDetail `json:"details" gorm:"foreignKey:BarangMasukID"`
}

type BarangMasukDetail struct {
	gorm.Model
	BarangMasukID uint                      `json:"barangMasukId" gorm:"index"`
	BarangID      uint                      `json:"barangId"`
	Barang        Barang                    `json:"barang" gorm:"foreignKey:BarangID"`
	Jumlah        int                       `json:"jumlah"`
	NoSeriList    []DetailBarangMasukNoSeri `json:"units" gorm:"foreignKey:BarangMasukDetailID"`
}

// DetailBarangMasukNoSeri adalah satu unit fisik. NoSeri digenerate server
// (7 digit, zero padded, naik terus) kecuali caller mengirim sendiri.
type DetailBarangMasukNoSeri struct {
	gorm.Model
	BarangMasukDetailID uint   `json:"barangMasukDetailId" gorm:"index"`
	NoSeri              string `json:"noSeri" gorm:"uniqueIndex;size:10"`
	Lokasi              string `json:"lokasi" gorm:"size:120"`
	Keterangan          string `json:"keterangan" gorm:"size:255"`
}
