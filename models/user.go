package models

import (
	"fmt"
	"time"
)

// Role dipakai untuk gate akses per layar. Closed set: setiap dispatch
// berdasarkan role wajib exhaustive, tidak ada fallthrough "role tidak dikenal".
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleSupervisor    Role = "supervisor"
	RoleInspeksiMesin Role = "inspeksi_mesin"
	RoleAssembly      Role = "assembly_staff"
	RoleQC            Role = "qc_staff"
	RolePDI           Role = "pdi_staff"
	RolePainting      Role = "painting_staff"
	RolePindahLokasi  Role = "pindah_lokasi"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSupervisor, RoleInspeksiMesin, RoleAssembly,
		RoleQC, RolePDI, RolePainting, RolePindahLokasi:
		return Role(s), nil
	}
	return "", fmt.Errorf("role %q tidak dikenal", s)
}

// IsApprover: hanya admin dan supervisor yang boleh approve/unapprove lembar kerja.
func (r Role) IsApprover() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

type User struct {
	ID           uint       `gorm:"primaryKey"           json:"id"`
	Name         string     `gorm:"size:180"             json:"name"`
	Username     string     `gorm:"uniqueIndex;size:120" json:"username"`
	Email        string     `gorm:"size:180"             json:"email"`
	Role         Role       `gorm:"size:60"              json:"role"`
	JobType      string     `gorm:"size:60"              json:"jobType"`
	PasswordHash string     `gorm:"size:255"             json:"-"` // jangan dikirim ke client
	IsActive     bool       `gorm:"default:true"         json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
