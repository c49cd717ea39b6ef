package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/models"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ApprovalInput struct {
	TransactionID uint   `json:"transactionId" binding:"required"`
	Action        string `json:"action" binding:"required"`
}

// Approval adalah state machine biner murni: unapproved <-> approved.
// approve pada record yang sudah approved cuma me-restamp audit field.
func Approval(c *gin.Context) {
	var in ApprovalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, "Validasi", "transactionId dan action wajib diisi")
		return
	}
	if in.Action != "approve" && in.Action != "unapprove" {
		utils.ValidationError(c, "Validasi", "action harus approve atau unapprove")
		return
	}

	if !currentRole(c).IsApprover() {
		utils.Error(c, http.StatusForbidden, "Role tidak boleh melakukan approval")
		return
	}

	var record models.Transaksi
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, in.TransactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("Lembar kerja tidak ditemukan")
			}
			return err
		}

		var updates map[string]interface{}
		if in.Action == "approve" {
			now := time.Now().UTC()
			updates = map[string]interface{}{
				"is_approved": true,
				"approved_at": now,
				"approved_by": currentUserName(c),
			}
		} else {
			updates = map[string]interface{}{
				"is_approved": false,
				"approved_at": nil,
				"approved_by": "",
			}
		}
		return tx.Model(&record).Updates(updates).Error
	})

	if txErr != nil {
		respondError(c, txErr)
		return
	}

	if err := config.DB.First(&record, in.TransactionID).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, record)
}
