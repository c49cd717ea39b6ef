package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// JenisPekerjaan adalah tahapan lembar kerja per unit. Closed set, satu
// record per (noSeri, jenisPekerjaan).
type JenisPekerjaan string

const (
	JenisInspeksiMesin JenisPekerjaan = "inspeksi_mesin"
	JenisAssembly      JenisPekerjaan = "assembly_staff"
	JenisQC            JenisPekerjaan = "qc_staff"
	JenisPDI           JenisPekerjaan = "pdi_staff"
	JenisPainting      JenisPekerjaan = "painting_staff"
	JenisPindahLokasi  JenisPekerjaan = "pindah_lokasi"
)

func ParseJenisPekerjaan(s string) (JenisPekerjaan, error) {
	switch JenisPekerjaan(s) {
	case JenisInspeksiMesin, JenisAssembly, JenisQC, JenisPDI,
		JenisPainting, JenisPindahLokasi:
		return JenisPekerjaan(s), nil
	}
	return "", fmt.Errorf("jenis pekerjaan %q tidak dikenal", s)
}

// Transaksi adalah satu lembar kerja. Versi dipakai untuk optimistic lock:
// save dengan versi basi ditolak, last-write-wins tidak diterima di sini.
type Transaksi struct {
	gorm.Model
	NoSeri         string          `json:"noSeri" gorm:"size:10;index:idx_transaksi_seri_jenis,unique"`
	JenisPekerjaan JenisPekerjaan  `json:"jenisPekerjaan" gorm:"size:30;index:idx_transaksi_seri_jenis,unique"`
	Keterangan     string          `json:"keterangan" gorm:"size:255"`
	PIC            string          `json:"pic" gorm:"size:120"`
	Staff          string          `json:"staff" gorm:"size:120"`
	Versi          int             `json:"versi" gorm:"default:0"`
	IsApproved     bool            `json:"isApproved" gorm:"default:false"`
	ApprovedAt     *time.Time      `json:"approvedAt"`
	ApprovedBy     string          `json:"approvedBy" gorm:"size:120"`
	LokasiAwal     string          `json:"lokasiAwal" gorm:"size:120"`  // hanya pindah_lokasi
	LokasiBaru     string          `json:"lokasiBaru" gorm:"size:120"`  // hanya pindah_lokasi
	NoFormPindah   string          `json:"noFormPindah" gorm:"size:60"` // hanya pindah_lokasi
	Items          []TransaksiItem `json:"items" gorm:"foreignKey:TransaksiID"`
}

// TransaksiItem satu baris checklist. Hasil/PDI untuk checklist boolean,
// Aktual/Standar untuk parameter ukur QC.
type TransaksiItem struct {
	gorm.Model
	TransaksiID uint   `json:"transaksiId" gorm:"index"`
	Urutan      int    `json:"urutan"`
	Parameter   string `json:"parameter" gorm:"size:180"`
	Hasil       bool   `json:"hasil"`
	PDI         bool   `json:"pdi"`
	Aktual      string `json:"aktual" gorm:"size:60"`
	Standar     string `json:"standar" gorm:"size:60"`
	Keterangan  string `json:"keterangan" gorm:"size:255"`
}
