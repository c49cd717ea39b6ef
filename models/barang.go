package models

import "gorm.io/gorm"

// Barang adalah master data. Stok TIDAK boleh diubah langsung lewat layar
// master; hanya proses barang masuk/keluar yang menggesernya.
type Barang struct {
	gorm.Model
	Kode     string `json:"kode" gorm:"uniqueIndex;size:60"`
	Nama     string `json:"nama" gorm:"size:180"`
	Satuan   string `json:"satuan" gorm:"size:30"`
	Stok     int    `json:"stok"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}
