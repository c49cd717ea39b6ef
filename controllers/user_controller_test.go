package controllers_test

import (
	"net/http"
	"testing"

	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/testutil"
)

func TestCreateUserValidasiRole(t *testing.T) {
	testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	admin := testutil.Token(t, 1, "Admin", models.RoleAdmin)

	w := testutil.DoJSON(t, router, http.MethodPost, "/api/users", admin,
		map[string]string{"name": "Budi", "username": "budi", "password": "pass123", "role": "mandor"})
	testutil.ExpectStatus(t, w, http.StatusBadRequest)

	w = testutil.DoJSON(t, router, http.MethodPost, "/api/users", admin,
		map[string]string{"name": "Budi", "username": "budi", "password": "pass123", "role": "assembly_staff"})
	testutil.ExpectStatus(t, w, http.StatusCreated)

	// password hash tidak boleh bocor di respon
	body := testutil.DecodeBody(t, w)
	data, _ := body["data"].(map[string]interface{})
	if _, ada := data["passwordHash"]; ada {
		t.Error("password hash ikut keluar di respon")
	}
}

func TestCreateUserUsernameDuplikat(t *testing.T) {
	testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	admin := testutil.Token(t, 1, "Admin", models.RoleAdmin)

	payload := map[string]string{"name": "Budi", "username": "budi", "password": "pass123", "role": "qc_staff"}
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/users", admin, payload)
	testutil.ExpectStatus(t, w, http.StatusCreated)

	w = testutil.DoJSON(t, router, http.MethodPost, "/api/users", admin, payload)
	testutil.ExpectStatus(t, w, http.StatusBadRequest)
}

func TestUsersHanyaAdmin(t *testing.T) {
	testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	supervisor := testutil.Token(t, 2, "Pak Hendra", models.RoleSupervisor)

	w := testutil.DoJSON(t, router, http.MethodGet, "/api/users", supervisor, nil)
	testutil.ExpectStatus(t, w, http.StatusForbidden)
}

func TestDeleteUserNonaktifkanBukanHapus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()
	admin := testutil.Token(t, 1, "Admin", models.RoleAdmin)

	target := seedUser(t, db, "budi", "pass123", models.RoleAssembly)

	w := testutil.DoJSON(t, router, http.MethodDelete, "/api/users/"+itoa(target.ID), admin, nil)
	testutil.ExpectStatus(t, w, http.StatusOK)

	var after models.User
	if err := db.First(&after, target.ID).Error; err != nil {
		t.Fatalf("user ikut terhapus dari tabel: %v", err)
	}
	if after.IsActive {
		t.Error("user masih aktif setelah dihapus")
	}
}

func TestDeleteUserAkunSendiri(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	self := seedUser(t, db, "admin2", "pass123", models.RoleAdmin)
	token := testutil.Token(t, self.ID, self.Name, self.Role)

	w := testutil.DoJSON(t, router, http.MethodDelete, "/api/users/"+itoa(self.ID), token, nil)
	testutil.ExpectStatus(t, w, http.StatusBadRequest)
}
