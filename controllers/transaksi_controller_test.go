package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/usefulcoin6611/hpc-sub000/controllers"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/testutil"
)

func TestNoFormPindah(t *testing.T) {
	got := controllers.NoFormPindah("0000123", 2026)
	if got != "PL/V1/0000123/2026" {
		t.Errorf("NoFormPindah = %q, mau PL/V1/0000123/2026", got)
	}
}

func TestGetTransaksiBelumTersimpanDapatDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	token := testutil.Token(t, 1, "Admin", models.RoleAdmin)

	unit := seedUnitDiterima(t, db, router, token, 1, "Gudang A")

	w := testutil.DoJSON(t, router, http.MethodGet,
		"/api/transaksi?noSeri="+unit.NoSeri+"&jenisPekerjaan=qc_staff", token, nil)
	testutil.ExpectStatus(t, w, http.StatusOK)

	body := testutil.DecodeBody(t, w)
	data, _ := body["data"].(map[string]interface{})
	items, _ := data["items"].([]interface{})
	if len(items) == 0 {
		t.Fatal("lembar kerja belum tersimpan harus diseed checklist default")
	}
	if id, _ := data["ID"].(float64); id != 0 {
		t.Errorf("record transient punya ID %v, mau 0", id)
	}
}

func TestSaveTransaksiChecklistRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	token := testutil.Token(t, 7, "Siti QC", models.RoleQC)

	unit := seedUnitDiterima(t, db, router, testutil.Token(t, 1, "Admin", models.RoleAdmin), 1, "Gudang A")

	body := map[string]interface{}{
		"noSeri":         unit.NoSeri,
		"jenisPekerjaan": "qc_staff",
		"staff":          "Siti",
		"items": []map[string]interface{}{
			{"parameter": "Fungsi hidrolik", "hasil": true, "aktual": "normal"},
			{"parameter": "   ", "hasil": true}, // baris blank harus dibuang
			{"parameter": "Kebocoran oli", "hasil": false, "keterangan": "rembes sedikit"},
		},
	}
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/transaksi", token, body)
	testutil.ExpectStatus(t, w, http.StatusOK)

	var record models.Transaksi
	if err := db.Preload("Items").
		Where("no_seri = ? AND jenis_pekerjaan = ?", unit.NoSeri, models.JenisQC).
		First(&record).Error; err != nil {
		t.Fatalf("baca record gagal: %v", err)
	}
	if len(record.Items) != 2 {
		t.Fatalf("jumlah item tersimpan = %d, mau 2 (baris blank dibuang)", len(record.Items))
	}
	if record.Items[0].Parameter != "Fungsi hidrolik" || record.Items[0].Urutan != 1 {
		t.Errorf("item pertama = %+v", record.Items[0])
	}
	if record.Items[1].Parameter != "Kebocoran oli" || record.Items[1].Urutan != 2 {
		t.Errorf("item kedua = %+v", record.Items[1])
	}
	if record.Versi != 1 {
		t.Errorf("versi awal = %d, mau 1", record.Versi)
	}
	if record.PIC != "Siti QC" {
		t.Errorf("PIC = %q, mau nama dari token", record.PIC)
	}

	// GET setelah tersimpan mengembalikan isi tersimpan, bukan default
	w = testutil.DoJSON(t, router, http.MethodGet,
		"/api/transaksi?noSeri="+unit.NoSeri+"&jenisPekerjaan=qc_staff", token, nil)
	testutil.ExpectStatus(t, w, http.StatusOK)
	resp := testutil.DecodeBody(t, w)
	data, _ := resp["data"].(map[string]interface{})
	items, _ := data["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("GET setelah simpan dapat %d item, mau 2", len(items))
	}
}

func TestSaveTransaksiVersiBasi(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	token := testutil.Token(t, 7, "Siti QC", models.RoleQC)

	unit := seedUnitDiterima(t, db, router, testutil.Token(t, 1, "Admin", models.RoleAdmin), 1, "Gudang A")

	save := func(versi int, param string) int {
		body := map[string]interface{}{
			"noSeri":         unit.NoSeri,
			"jenisPekerjaan": "qc_staff",
			"versi":          versi,
			"items": []map[string]interface{}{
				{"parameter": param, "hasil": true},
			},
		}
		w := testutil.DoJSON(t, router, http.MethodPost, "/api/transaksi", token, body)
		return w.Code
	}

	if code := save(0, "Cek awal"); code != http.StatusOK {
		t.Fatalf("simpan pertama status %d", code)
	}
	// versi di DB sekarang 1; simpan dengan versi 1 naik ke 2
	if code := save(1, "Cek kedua"); code != http.StatusOK {
		t.Fatalf("simpan kedua status %d", code)
	}
	// versi 1 sudah basi
	if code := save(1, "Cek basi"); code != http.StatusConflict {
		t.Fatalf("simpan versi basi status %d, mau 409", code)
	}

	var record models.Transaksi
	db.Where("no_seri = ? AND jenis_pekerjaan = ?", unit.NoSeri, models.JenisQC).First(&record)
	if record.Versi != 2 {
		t.Errorf("versi akhir = %d, mau 2", record.Versi)
	}
}

func TestSaveTransaksiRoleTidakCocok(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	admin := testutil.Token(t, 1, "Admin", models.RoleAdmin)
	assembly := testutil.Token(t, 9, "Budi", models.RoleAssembly)

	unit := seedUnitDiterima(t, db, router, admin, 1, "Gudang A")

	body := map[string]interface{}{
		"noSeri":         unit.NoSeri,
		"jenisPekerjaan": "qc_staff",
		"items": []map[string]interface{}{
			{"parameter": "Cek fungsi", "hasil": true},
		},
	}
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/transaksi", assembly, body)
	testutil.ExpectStatus(t, w, http.StatusForbidden)

	// admin boleh mengisi tahapan mana pun
	w = testutil.DoJSON(t, router, http.MethodPost, "/api/transaksi", admin, body)
	testutil.ExpectStatus(t, w, http.StatusOK)
}

func TestSaveTransaksiChecklistKosong(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	token := testutil.Token(t, 1, "Admin", models.RoleAdmin)

	unit := seedUnitDiterima(t, db, router, token, 1, "Gudang A")

	body := map[string]interface{}{
		"noSeri":         unit.NoSeri,
		"jenisPekerjaan": "qc_staff",
		"items": []map[string]interface{}{
			{"parameter": "  ", "hasil": true},
		},
	}
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/transaksi", token, body)
	testutil.ExpectStatus(t, w, http.StatusBadRequest)
}

func TestSavePindahLokasi(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	token := testutil.Token(t, 1, "Admin", models.RoleAdmin)

	unit := seedUnitDiterima(t, db, router, token, 1, "Gudang A")

	body := map[string]interface{}{
		"noSeri":         unit.NoSeri,
		"jenisPekerjaan": "pindah_lokasi",
		"lokasiBaru":     "Gudang A", // sama dengan lokasi sekarang
	}
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/transaksi", token, body)
	testutil.ExpectStatus(t, w, http.StatusBadRequest)

	body["lokasiBaru"] = "Gudang B"
	w = testutil.DoJSON(t, router, http.MethodPost, "/api/transaksi", token, body)
	testutil.ExpectStatus(t, w, http.StatusOK)

	var record models.Transaksi
	if err := db.Where("no_seri = ? AND jenis_pekerjaan = ?", unit.NoSeri, models.JenisPindahLokasi).
		First(&record).Error; err != nil {
		t.Fatalf("baca record pindah gagal: %v", err)
	}
	if record.LokasiAwal != "Gudang A" || record.LokasiBaru != "Gudang B" {
		t.Errorf("lokasi = %q -> %q, mau Gudang A -> Gudang B", record.LokasiAwal, record.LokasiBaru)
	}
	wantForm := fmt.Sprintf("PL/V1/%s/%d", unit.NoSeri, time.Now().Year())
	if record.NoFormPindah != wantForm {
		t.Errorf("no form pindah = %q, mau %q", record.NoFormPindah, wantForm)
	}

	// lokasi unit ikut pindah
	var moved models.DetailBarangMasukNoSeri
	db.First(&moved, unit.ID)
	if moved.Lokasi != "Gudang B" {
		t.Errorf("lokasi unit = %q, mau Gudang B", moved.Lokasi)
	}
}
