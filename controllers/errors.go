package controllers

import (
	"errors"
	"net/http"

	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// apiError membawa error bisnis keluar dari closure transaksi supaya
// handler bisa memilih status + pesan yang tepat; selain ini semua
// dianggap kegagalan server.
type apiError struct {
	status int
	title  string
	msg    string
}

func (e *apiError) Error() string { return e.msg }

func validationErr(title, msg string) *apiError {
	return &apiError{status: http.StatusBadRequest, title: title, msg: msg}
}

func conflictErr(msg string) *apiError {
	return &apiError{status: http.StatusConflict, msg: msg}
}

func notFoundErr(msg string) *apiError {
	return &apiError{status: http.StatusNotFound, msg: msg}
}

func respondError(c *gin.Context, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		resp := gin.H{"error": ae.msg}
		if ae.title != "" {
			resp["title"] = ae.title
		}
		c.JSON(ae.status, resp)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		return
	}
	zap.L().Error("internal error", zap.Error(err))
	utils.ServerError(c)
}
