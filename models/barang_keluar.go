package models

import (
	"time"

	"gorm.io/gorm"
)

type BarangKeluar struct {
	gorm.Model
	Tanggal    time.Time            `json:"tanggal"`
	Tujuan     string               `json:"tujuan" gorm:"size:180"`
	DeliveryNo string               `json:"deliveryNo" gorm:"size:60"`
	ShipVia    string               `json:"shipVia" gorm:"size:60"`
	Keterangan string               `json:"keterangan" gorm:"size:255"`
	Status     string               `json:"status" gorm:"size:30;default:pending"`
	Details    []BarangKeluarDetail `json:"details" gorm:"foreignKey:BarangKeluarID"`
}

// BarangKeluarDetail mereservasi jumlah terhadap satu unit barang masuk.
// Jumlah tidak boleh melewati sisa qty unit tsb saat transaksi commit.
type BarangKeluarDetail struct {
	gorm.Model
	BarangKeluarID            uint                    `json:"barangKeluarId" gorm:"index"`
	BarangID                  uint                    `json:"barangId"`
	Barang                    Barang                  `json:"barang" gorm:"foreignKey:BarangID"`
	DetailBarangMasukNoSeriID uint                    `json:"detailBarangMasukNoSeriId" gorm:"index"`
	NoSeri                    DetailBarangMasukNoSeri `json:"noSeriRef" gorm:"foreignKey:DetailBarangMasukNoSeriID"`
	Jumlah                    int                     `json:"jumlah"`
}
