package service

import (
	"context"

	"gorm.io/gorm"
)

// ===== DTO laporan inventaris =====

type InventarisRow struct {
	BarangID    uint   `json:"barangId"`
	Kode        string `json:"kodeBarang"`
	Nama        string `json:"namaBarang"`
	TotalQty    int    `json:"totalQty"`
	QtyReady    int    `json:"qtyReady"`
	QtyNotReady int    `json:"qtyNotReady"`
}

type InventarisFilter struct {
	Period string // "YYYY-MM", kosong = semua periode
}

type LaporanService interface {
	// Total = on-hand (sisa qty per unit dijumlah). Ready = on-hand milik
	// unit yang lembar kerja PDI-nya sudah diapprove.
	Inventaris(ctx context.Context, f InventarisFilter) ([]InventarisRow, error)
}

type laporanService struct{ db *gorm.DB }

func NewLaporanService(db *gorm.DB) LaporanService { return &laporanService{db: db} }

func (s *laporanService) Inventaris(ctx context.Context, f InventarisFilter) ([]InventarisRow, error) {
	q := `
		SELECT
			b.id   AS barang_id,
			b.kode AS kode,
			b.nama AS nama,
			COALESCE(SUM(u.sisa), 0)                                        AS total_qty,
			COALESCE(SUM(CASE WHEN u.ready THEN u.sisa ELSE 0 END), 0)      AS qty_ready,
			COALESCE(SUM(CASE WHEN u.ready THEN 0 ELSE u.sisa END), 0)      AS qty_not_ready
		FROM barangs b
		LEFT JOIN (
			SELECT
				d.barang_id,
				d.jumlah - COALESCE(SUM(bk.jumlah), 0)        AS sisa,
				COALESCE(BOOL_OR(t.is_approved), FALSE)       AS ready
			FROM detail_barang_masuk_no_seris ns
			INNER JOIN barang_masuk_details d ON d.id = ns.barang_masuk_detail_id
			INNER JOIN barang_masuks h ON h.id = d.barang_masuk_id
			LEFT JOIN barang_keluar_details bk
				ON bk.detail_barang_masuk_no_seri_id = ns.id AND bk.deleted_at IS NULL
			LEFT JOIN transaksis t
				ON t.no_seri = ns.no_seri AND t.jenis_pekerjaan = 'pdi_staff' AND t.deleted_at IS NULL
			WHERE ns.deleted_at IS NULL
			  AND h.deleted_at IS NULL
			  AND (? = '' OR to_char(h.tanggal, 'YYYY-MM') = ?)
			GROUP BY ns.id, d.barang_id, d.jumlah
		) u ON u.barang_id = b.id
		WHERE b.deleted_at IS NULL AND b.is_active = TRUE
		GROUP BY b.id, b.kode, b.nama
		ORDER BY b.kode ASC`

	var rows []InventarisRow
	if err := s.db.WithContext(ctx).Raw(q, f.Period, f.Period).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
