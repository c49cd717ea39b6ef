package controllers

import (
	"errors"
	"strconv"

	"github.com/usefulcoin6611/hpc-sub000/models"

	"github.com/gin-gonic/gin"
)

// currentUserID menormalkan user_id dari claims; tipe numeriknya bisa
// berubah-ubah setelah lewat JSON/JWT.
func currentUserID(c *gin.Context) (uint, error) {
	rawID, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id tidak ditemukan di context")
	}
	switch v := rawID.(type) {
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	case int64:
		return uint(v), nil
	case float64:
		return uint(v), nil
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n), nil
		}
	}
	return 0, errors.New("user_id tidak valid")
}

func currentUserName(c *gin.Context) string {
	if v, ok := c.Get("nama"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func currentRole(c *gin.Context) models.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(models.Role); ok {
			return r
		}
	}
	return ""
}
