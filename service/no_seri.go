package service

import (
	"fmt"
	"strconv"

	"github.com/usefulcoin6611/hpc-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FormatNoSeri memformat nomor urut jadi no seri 7 digit zero padded.
func FormatNoSeri(n int64) string {
	return fmt.Sprintf("%07d", n)
}

// NoSeriBerikutnya menghitung count suksesor dari basis terakhir. Offset
// batch adalah variabel lokal, bukan state package; aman dipanggil paralel.
func NoSeriBerikutnya(base int64, count int) []string {
	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, FormatNoSeri(base+int64(i)))
	}
	return out
}

// AllocateNoSeri mengambil count no seri berurutan di dalam transaksi
// caller. Row dengan no seri terbesar dikunci FOR UPDATE supaya dua
// transaksi barang masuk tidak membaca basis yang sama. Tabel kosong
// tidak punya row untuk dikunci; race dari kondisi itu ditangkap unique
// index no_seri dan caller me-retry transaksinya.
func AllocateNoSeri(tx *gorm.DB, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("jumlah no seri harus > 0, dapat %d", count)
	}

	var last models.DetailBarangMasukNoSeri
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("no_seri DESC").
		Limit(1).
		Find(&last).Error; err != nil {
		return nil, err
	}

	var base int64
	if last.ID != 0 {
		n, err := strconv.ParseInt(last.NoSeri, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("no seri %q tidak bisa diparse: %w", last.NoSeri, err)
		}
		base = n
	}

	return NoSeriBerikutnya(base, count), nil
}
