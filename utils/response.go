package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bentuk respon mengikuti kontrak frontend: sukses {success, data},
// gagal {error} plus title opsional untuk dialog validasi.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Paginated(c *gin.Context, data interface{}, page, limit int, total int64) {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"totalData":  total,
			"totalPages": totalPages,
		},
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ValidationError untuk pesan yang ditampilkan apa adanya ke user.
func ValidationError(c *gin.Context, title, message string) {
	resp := gin.H{"error": message}
	if title != "" {
		resp["title"] = title
	}
	c.JSON(http.StatusBadRequest, resp)
}

// ServerError menutup detail internal dari client; detail cukup di log.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan pada server"})
}
