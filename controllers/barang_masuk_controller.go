package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/service"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BarangMasukUnitInput struct {
	NoSeri     string `json:"noSeri"`
	Lokasi     string `json:"lokasi"`
	Keterangan string `json:"keterangan"`
}

type BarangMasukDetailInput struct {
	NamaBarang string                 `json:"namaBarang"`
	Jumlah     int                    `json:"jumlah"`
	Units      []BarangMasukUnitInput `json:"units"`
}

type BarangMasukInput struct {
	ID             uint                     `json:"id"`
	Tanggal        time.Time                `json:"tanggal"`
	KodeKedatangan string                   `json:"kodeKedatangan"`
	NamaSupplier   string                   `json:"namaSupplier"`
	NoForm         string                   `json:"noForm"`
	Status         string                   `json:"status"`
	Details        []BarangMasukDetailInput `json:"details"`
}

func GetAllBarangMasuk(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	q := config.DB.Model(&models.BarangMasuk{}).Where("is_active = true")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("kode_kedatangan ILIKE ? OR no_form ILIKE ? OR nama_supplier ILIKE ?", like, like, like)
	}
	if start := c.Query("startDate"); start != "" {
		if t, err := time.Parse("2006-01-02", start); err == nil {
			q = q.Where("tanggal >= ?", t)
		}
	}
	if end := c.Query("endDate"); end != "" {
		if t, err := time.Parse("2006-01-02", end); err == nil {
			q = q.Where("tanggal < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}

	var rows []models.BarangMasuk
	if err := q.
		Preload("Details.Barang").
		Preload("Details.NoSeriList").
		Order("tanggal DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		respondError(c, err)
		return
	}

	utils.Paginated(c, rows, page, limit, total)
}

func validateHeaderBarangMasuk(in *BarangMasukInput) error {
	if in.Tanggal.IsZero() {
		return validationErr("Validasi", "Tanggal wajib diisi")
	}
	if strings.TrimSpace(in.KodeKedatangan) == "" {
		return validationErr("Validasi", "Kode kedatangan wajib diisi")
	}
	if strings.TrimSpace(in.NoForm) == "" {
		return validationErr("Validasi", "No form wajib diisi")
	}
	if strings.TrimSpace(in.NamaSupplier) == "" {
		return validationErr("Validasi", "Nama supplier wajib diisi")
	}
	if in.Status == "" {
		in.Status = models.StatusDiterima
	}
	return nil
}

// cekDuplikatHeader: kode kedatangan & no form harus unik di antara header
// aktif lain.
func cekDuplikatHeader(tx *gorm.DB, in *BarangMasukInput, excludeID uint) error {
	var cnt int64
	if err := tx.Model(&models.BarangMasuk{}).
		Where("kode_kedatangan = ? AND is_active = true AND id <> ?", in.KodeKedatangan, excludeID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return validationErr("Duplikat", fmt.Sprintf("Kode kedatangan %s sudah digunakan", in.KodeKedatangan))
	}
	if err := tx.Model(&models.BarangMasuk{}).
		Where("no_form = ? AND is_active = true AND id <> ?", in.NoForm, excludeID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return validationErr("Duplikat", fmt.Sprintf("No form %s sudah digunakan", in.NoForm))
	}
	return nil
}

// buatDetailBarangMasuk membuat detail + unit untuk satu header dan
// menaikkan stok. Baris kosong (nama barang blank) dibuang lebih dulu;
// minimal satu baris valid harus tersisa. No seri digenerate untuk unit
// yang tidak membawa no seri sendiri, satu batch alokasi untuk seluruh
// request dengan cursor lokal.
func buatDetailBarangMasuk(tx *gorm.DB, headerID uint, inputs []BarangMasukDetailInput) error {
	details := make([]BarangMasukDetailInput, 0, len(inputs))
	for _, d := range inputs {
		if strings.TrimSpace(d.NamaBarang) == "" {
			continue
		}
		details = append(details, d)
	}
	if len(details) == 0 {
		return validationErr("Validasi", "Minimal satu baris detail barang harus diisi")
	}

	type resolvedDetail struct {
		barang models.Barang
		input  BarangMasukDetailInput
	}

	resolved := make([]resolvedDetail, 0, len(details))
	perluNoSeri := 0
	for _, d := range details {
		if d.Jumlah <= 0 {
			return validationErr("Validasi", fmt.Sprintf("Jumlah untuk %s harus lebih dari 0", d.NamaBarang))
		}

		var barang models.Barang
		if err := tx.Where("nama = ? AND is_active = true", d.NamaBarang).First(&barang).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErr("Barang tidak ditemukan",
					fmt.Sprintf("Barang %q belum ada di master data, tambahkan dulu di halaman Master Barang", d.NamaBarang))
			}
			return err
		}

		if len(d.Units) == 0 {
			perluNoSeri += d.Jumlah
		} else {
			for _, u := range d.Units {
				if strings.TrimSpace(u.NoSeri) == "" {
					perluNoSeri++
				}
			}
		}
		resolved = append(resolved, resolvedDetail{barang: barang, input: d})
	}

	var serials []string
	if perluNoSeri > 0 {
		var err error
		serials, err = service.AllocateNoSeri(tx, perluNoSeri)
		if err != nil {
			return err
		}
	}

	cursor := 0
	nextSerial := func() string {
		s := serials[cursor]
		cursor++
		return s
	}

	for _, rd := range resolved {
		detail := models.BarangMasukDetail{
			BarangMasukID: headerID,
			BarangID:      rd.barang.ID,
			Jumlah:        rd.input.Jumlah,
		}

		if len(rd.input.Units) == 0 {
			for i := 0; i < rd.input.Jumlah; i++ {
				detail.NoSeriList = append(detail.NoSeriList, models.DetailBarangMasukNoSeri{
					NoSeri: nextSerial(),
				})
			}
		} else {
			for _, u := range rd.input.Units {
				noSeri := strings.TrimSpace(u.NoSeri)
				if noSeri == "" {
					noSeri = nextSerial()
				}
				detail.NoSeriList = append(detail.NoSeriList, models.DetailBarangMasukNoSeri{
					NoSeri:     noSeri,
					Lokasi:     u.Lokasi,
					Keterangan: u.Keterangan,
				})
			}
		}

		if err := tx.Create(&detail).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Barang{}).
			Where("id = ?", rd.barang.ID).
			UpdateColumn("stok", gorm.Expr("stok + ?", rd.input.Jumlah)).Error; err != nil {
			return err
		}
	}

	return nil
}

// hapusIsiBarangMasuk membalik kontribusi stok lalu menghapus anak-anak
// header (unit dulu, baru detail) supaya FK tidak melawan. Ditolak kalau
// ada unit yang sudah direferensikan barang keluar.
func hapusIsiBarangMasuk(tx *gorm.DB, header *models.BarangMasuk) error {
	unitIDs := make([]uint, 0)
	detailIDs := make([]uint, 0)
	for _, d := range header.Details {
		detailIDs = append(detailIDs, d.ID)
		for _, u := range d.NoSeriList {
			unitIDs = append(unitIDs, u.ID)
		}
	}

	if len(unitIDs) > 0 {
		var refs int64
		if err := tx.Model(&models.BarangKeluarDetail{}).
			Where("detail_barang_masuk_no_seri_id IN ?", unitIDs).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return validationErr("Tidak bisa diubah",
				"Ada no seri dari transaksi ini yang sudah dipakai barang keluar")
		}
	}

	for _, d := range header.Details {
		if err := tx.Model(&models.Barang{}).
			Where("id = ?", d.BarangID).
			UpdateColumn("stok", gorm.Expr("stok - ?", d.Jumlah)).Error; err != nil {
			return err
		}
	}

	if len(unitIDs) > 0 {
		if err := tx.Unscoped().
			Where("id IN ?", unitIDs).
			Delete(&models.DetailBarangMasukNoSeri{}).Error; err != nil {
			return err
		}
	}
	if len(detailIDs) > 0 {
		if err := tx.Unscoped().
			Where("id IN ?", detailIDs).
			Delete(&models.BarangMasukDetail{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// isSerialCollision: bentrok unique index no seri, satu-satunya kondisi
// yang layak di-retry (dua request sama-sama mulai dari tabel kosong).
func isSerialCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "no_seri")
}

func CreateBarangMasuk(c *gin.Context) {
	var in BarangMasukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "Payload tidak valid")
		return
	}
	if err := validateHeaderBarangMasuk(&in); err != nil {
		respondError(c, err)
		return
	}

	var header models.BarangMasuk

	const maxRetries = 3
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		header = models.BarangMasuk{}
		lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
			if err := cekDuplikatHeader(tx, &in, 0); err != nil {
				return err
			}

			header = models.BarangMasuk{
				Tanggal:        in.Tanggal,
				KodeKedatangan: in.KodeKedatangan,
				NamaSupplier:   in.NamaSupplier,
				NoForm:         in.NoForm,
				Status:         in.Status,
				IsActive:       true,
			}
			if err := tx.Create(&header).Error; err != nil {
				return err
			}
			return buatDetailBarangMasuk(tx, header.ID, in.Details)
		})

		if lastErr == nil {
			break
		}
		if isSerialCollision(lastErr) {
			continue
		}
		break
	}

	if lastErr != nil {
		respondError(c, lastErr)
		return
	}

	if err := config.DB.
		Preload("Details.Barang").
		Preload("Details.NoSeriList").
		First(&header, header.ID).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, header)
}

func UpdateBarangMasuk(c *gin.Context) {
	var in BarangMasukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "Payload tidak valid")
		return
	}
	if in.ID == 0 {
		utils.ValidationError(c, "Validasi", "ID wajib diisi")
		return
	}
	if err := validateHeaderBarangMasuk(&in); err != nil {
		respondError(c, err)
		return
	}

	const maxRetries = 3
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
			var header models.BarangMasuk
			if err := tx.
				Preload("Details.NoSeriList").
				Where("is_active = true").
				First(&header, in.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFoundErr("Transaksi barang masuk tidak ditemukan")
				}
				return err
			}

			if err := cekDuplikatHeader(tx, &in, header.ID); err != nil {
				return err
			}

			// revert dulu kontribusi lama, baru apply ulang seperti create;
			// tanpa ini edit berulang bikin stok dobel
			if err := hapusIsiBarangMasuk(tx, &header); err != nil {
				return err
			}

			updates := map[string]interface{}{
				"tanggal":         in.Tanggal,
				"kode_kedatangan": in.KodeKedatangan,
				"nama_supplier":   in.NamaSupplier,
				"no_form":         in.NoForm,
				"status":          in.Status,
			}
			if err := tx.Model(&header).Updates(updates).Error; err != nil {
				return err
			}

			return buatDetailBarangMasuk(tx, header.ID, in.Details)
		})

		if lastErr == nil {
			break
		}
		if isSerialCollision(lastErr) {
			continue
		}
		break
	}

	if lastErr != nil {
		respondError(c, lastErr)
		return
	}

	var header models.BarangMasuk
	if err := config.DB.
		Preload("Details.Barang").
		Preload("Details.NoSeriList").
		First(&header, in.ID).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, header)
}

func DeleteBarangMasuk(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil || id == 0 {
		utils.ValidationError(c, "Validasi", "ID tidak valid")
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var header models.BarangMasuk
		if err := tx.
			Preload("Details.NoSeriList").
			Where("is_active = true").
			First(&header, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("Transaksi barang masuk tidak ditemukan")
			}
			return err
		}

		if err := hapusIsiBarangMasuk(tx, &header); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&header).Error
	})

	if txErr != nil {
		respondError(c, txErr)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
