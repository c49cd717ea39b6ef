package controllers_test

import (
	"net/http"
	"testing"

	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/testutil"

	"gorm.io/gorm"
)

func seedTransaksi(t *testing.T, db *gorm.DB) models.Transaksi {
	t.Helper()
	record := models.Transaksi{
		NoSeri:         "0000001",
		JenisPekerjaan: models.JenisQC,
		PIC:            "Siti QC",
		Versi:          1,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed transaksi gagal: %v", err)
	}
	return record
}

func TestApprovalApproveLaluUnapprove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	supervisor := testutil.Token(t, 2, "Pak Hendra", models.RoleSupervisor)

	record := seedTransaksi(t, db)

	w := testutil.DoJSON(t, router, http.MethodPost, "/api/approval", supervisor,
		map[string]interface{}{"transactionId": record.ID, "action": "approve"})
	testutil.ExpectStatus(t, w, http.StatusOK)

	var after models.Transaksi
	db.First(&after, record.ID)
	if !after.IsApproved || after.ApprovedAt == nil || after.ApprovedBy != "Pak Hendra" {
		t.Fatalf("setelah approve: approved=%v at=%v by=%q", after.IsApproved, after.ApprovedAt, after.ApprovedBy)
	}

	w = testutil.DoJSON(t, router, http.MethodPost, "/api/approval", supervisor,
		map[string]interface{}{"transactionId": record.ID, "action": "unapprove"})
	testutil.ExpectStatus(t, w, http.StatusOK)

	db.First(&after, record.ID)
	if after.IsApproved || after.ApprovedAt != nil || after.ApprovedBy != "" {
		t.Fatalf("unapprove harus membersihkan audit field: approved=%v at=%v by=%q",
			after.IsApproved, after.ApprovedAt, after.ApprovedBy)
	}
}

func TestApprovalUlangRestampAudit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	record := seedTransaksi(t, db)

	first := testutil.Token(t, 2, "Pak Hendra", models.RoleSupervisor)
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/approval", first,
		map[string]interface{}{"transactionId": record.ID, "action": "approve"})
	testutil.ExpectStatus(t, w, http.StatusOK)

	// approver lain approve lagi; audit field mengikuti approval terakhir
	second := testutil.Token(t, 3, "Bu Ratna", models.RoleSupervisor)
	w = testutil.DoJSON(t, router, http.MethodPost, "/api/approval", second,
		map[string]interface{}{"transactionId": record.ID, "action": "approve"})
	testutil.ExpectStatus(t, w, http.StatusOK)

	var after models.Transaksi
	db.First(&after, record.ID)
	if after.ApprovedBy != "Bu Ratna" {
		t.Errorf("approvedBy = %q, mau approver terakhir", after.ApprovedBy)
	}
}

func TestApprovalRoleBiasaDitolak(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	qc := testutil.Token(t, 7, "Siti QC", models.RoleQC)

	record := seedTransaksi(t, db)

	w := testutil.DoJSON(t, router, http.MethodPost, "/api/approval", qc,
		map[string]interface{}{"transactionId": record.ID, "action": "approve"})
	testutil.ExpectStatus(t, w, http.StatusForbidden)
}

func TestApprovalActionTidakDikenal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	supervisor := testutil.Token(t, 2, "Pak Hendra", models.RoleSupervisor)

	record := seedTransaksi(t, db)

	w := testutil.DoJSON(t, router, http.MethodPost, "/api/approval", supervisor,
		map[string]interface{}{"transactionId": record.ID, "action": "reject"})
	testutil.ExpectStatus(t, w, http.StatusBadRequest)

	w = testutil.DoJSON(t, router, http.MethodPost, "/api/approval", supervisor,
		map[string]interface{}{"action": "approve"})
	testutil.ExpectStatus(t, w, http.StatusBadRequest)
}
