package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/testutil"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// seedUnitDiterima membuat master barang plus satu transaksi barang masuk
// berstatus diterima dengan satu unit (jumlah qty) di lokasi tertentu,
// lewat endpoint supaya jalur alokasi no seri ikut teruji.
func seedUnitDiterima(t *testing.T, db *gorm.DB, router *gin.Engine, token string, qty int, lokasi string) models.DetailBarangMasukNoSeri {
	t.Helper()

	barang := models.Barang{Kode: "BRG-SEED", Nama: "Forklift 3T", Satuan: "unit", IsActive: true}
	if err := db.Where("kode = ?", barang.Kode).FirstOrCreate(&barang).Error; err != nil {
		t.Fatalf("seed barang gagal: %v", err)
	}

	body := map[string]interface{}{
		"tanggal":        "2026-08-01T00:00:00Z",
		"kodeKedatangan": "KD-SEED-" + strconv.Itoa(qty),
		"namaSupplier":   "PT Sumber Makmur",
		"noForm":         "F-SEED-" + strconv.Itoa(qty),
		"status":         models.StatusDiterima,
		"details": []map[string]interface{}{
			{
				"namaBarang": barang.Nama,
				"jumlah":     qty,
				"units": []map[string]interface{}{
					{"lokasi": lokasi},
				},
			},
		},
	}
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/barang-masuk", token, body)
	testutil.ExpectStatus(t, w, http.StatusCreated)

	var unit models.DetailBarangMasukNoSeri
	if err := db.Order("id DESC").First(&unit).Error; err != nil {
		t.Fatalf("baca unit seed gagal: %v", err)
	}
	return unit
}
