package models

import "testing"

func TestParseJenisPekerjaan(t *testing.T) {
	valid := []string{
		"inspeksi_mesin", "assembly_staff", "qc_staff",
		"pdi_staff", "painting_staff", "pindah_lokasi",
	}
	for _, s := range valid {
		if _, err := ParseJenisPekerjaan(s); err != nil {
			t.Errorf("ParseJenisPekerjaan(%q) gagal: %v", s, err)
		}
	}

	for _, s := range []string{"", "qc", "QC_STAFF", "mandor"} {
		if _, err := ParseJenisPekerjaan(s); err == nil {
			t.Errorf("ParseJenisPekerjaan(%q) harusnya gagal", s)
		}
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("admin"); err != nil {
		t.Errorf("role admin gagal diparse: %v", err)
	}
	if _, err := ParseRole("satpam"); err == nil {
		t.Error("role tidak dikenal harusnya gagal diparse")
	}
}

func TestIsApprover(t *testing.T) {
	cases := map[Role]bool{
		RoleAdmin:         true,
		RoleSupervisor:    true,
		RoleQC:            false,
		RolePDI:           false,
		RoleInspeksiMesin: false,
		RoleAssembly:      false,
		RolePainting:      false,
		RolePindahLokasi:  false,
	}
	for role, want := range cases {
		if got := role.IsApprover(); got != want {
			t.Errorf("%s.IsApprover() = %v, mau %v", role, got, want)
		}
	}
}
