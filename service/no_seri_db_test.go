package service_test

import (
	"testing"

	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/service"
	"github.com/usefulcoin6611/hpc-sub000/testutil"

	"gorm.io/gorm"
)

func TestAllocateNoSeriTabelKosong(t *testing.T) {
	db := testutil.SetupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		serials, err := service.AllocateNoSeri(tx, 3)
		if err != nil {
			return err
		}
		if serials[0] != "0000001" || serials[2] != "0000003" {
			t.Errorf("alokasi awal = %v, mau mulai dari 0000001", serials)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("alokasi gagal: %v", err)
	}
}

func TestAllocateNoSeriLanjutDariMaksimum(t *testing.T) {
	db := testutil.SetupTestDB(t)

	seed := []models.DetailBarangMasukNoSeri{
		{NoSeri: "0000001"},
		{NoSeri: "0000007"}, // ada lubang; basis tetap maksimum, bukan hitungan row
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed gagal: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		serials, err := service.AllocateNoSeri(tx, 2)
		if err != nil {
			return err
		}
		if serials[0] != "0000008" || serials[1] != "0000009" {
			t.Errorf("alokasi = %v, mau [0000008 0000009]", serials)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("alokasi gagal: %v", err)
	}
}

func TestAllocateNoSeriCountNol(t *testing.T) {
	db := testutil.SetupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := service.AllocateNoSeri(tx, 0)
		return err
	})
	if err == nil {
		t.Fatal("alokasi count 0 harus ditolak")
	}
}
