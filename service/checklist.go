package service

import "github.com/usefulcoin6611/hpc-sub000/models"

// Checklist default per jenis pekerjaan. Dipakai HANYA untuk seed lembar
// kerja yang belum pernah disimpan; begitu record ada, yang tersimpan
// dikembalikan apa adanya tanpa merge ulang.

var defaultChecklists = map[models.JenisPekerjaan][]string{
	models.JenisInspeksiMesin: {
		"Kondisi Fisik Mesin",
		"Level Oli Mesin",
		"Radiator & Air Coolant",
		"Kondisi Aki / Baterai",
		"Tekanan Ban",
		"Sistem Hidrolik",
		"Kebocoran Oli / Bahan Bakar",
		"Fungsi Lampu & Indikator Panel",
	},
	models.JenisAssembly: {
		"Pemasangan Attachment",
		"Torsi Baut Utama",
		"Sambungan Selang Hidrolik",
		"Pemasangan Kabin & Kaca",
		"Jalur Kelistrikan",
		"Grease Titik Pelumasan",
	},
	models.JenisQC: {
		"Tegangan Aki",
		"RPM Idle Mesin",
		"Tekanan Pompa Hidrolik",
		"Suhu Kerja Mesin",
		"Emisi Gas Buang",
	},
	models.JenisPDI: {
		"Dokumen & Buku Manual",
		"Kunci Kontak & Kunci Cadangan",
		"Fungsi Seluruh Tuas Kontrol",
		"Test Jalan Unit",
		"Kebersihan Unit",
		"Kelengkapan Aksesoris",
	},
	models.JenisPainting: {
		"Persiapan Permukaan",
		"Aplikasi Primer",
		"Aplikasi Cat Utama",
		"Pengukuran Ketebalan Cat",
		"Finishing & Clear Coat",
		"Pemasangan Decal / Stiker",
	},
}

// Standar pembanding untuk parameter ukur QC, sejajar index dengan
// checklist qc_staff di atas.
var qcStandards = []string{
	"12.4 - 12.8 V",
	"800 - 1000 rpm",
	"210 - 230 bar",
	"80 - 95 C",
	"max 3.5 %",
}

// DefaultChecklist membangun baris checklist awal untuk satu jenis
// pekerjaan. pindah_lokasi tidak punya checklist (kasus degenerate:
// form lokasi asal/tujuan).
func DefaultChecklist(jenis models.JenisPekerjaan) []models.TransaksiItem {
	params, ok := defaultChecklists[jenis]
	if !ok {
		return nil
	}

	items := make([]models.TransaksiItem, 0, len(params))
	for i, p := range params {
		item := models.TransaksiItem{Urutan: i + 1, Parameter: p}
		if jenis == models.JenisQC && i < len(qcStandards) {
			item.Standar = qcStandards[i]
		}
		items = append(items, item)
	}
	return items
}
