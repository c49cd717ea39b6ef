package controllers

import (
	"net/http"
	"strconv"

	"github.com/usefulcoin6611/hpc-sub000/config"
	"github.com/usefulcoin6611/hpc-sub000/service"
	"github.com/usefulcoin6611/hpc-sub000/utils"

	"github.com/gin-gonic/gin"
)

var laporanHeader = []string{"No", "Kode Barang", "Nama Barang", "Total Qty", "Qty Ready", "Qty Not Ready"}

// LaporanInventaris: format=json (default) | csv | xlsx.
func LaporanInventaris(c *gin.Context) {
	period := c.Query("period")
	format := c.DefaultQuery("format", "json")

	svc := service.NewLaporanService(config.DB)
	rows, err := svc.Inventaris(c.Request.Context(), service.InventarisFilter{Period: period})
	if err != nil {
		respondError(c, err)
		return
	}

	switch format {
	case "json":
		utils.Success(c, rows)

	case "csv":
		records := make([][]string, 0, len(rows))
		for i, r := range rows {
			records = append(records, []string{
				strconv.Itoa(i + 1), r.Kode, r.Nama,
				strconv.Itoa(r.TotalQty), strconv.Itoa(r.QtyReady), strconv.Itoa(r.QtyNotReady),
			})
		}
		data, err := utils.WriteCSV(laporanHeader, records)
		if err != nil {
			respondError(c, err)
			return
		}
		filename := utils.ExportFilename("laporan-inventaris", period, "csv")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", data)

	case "xlsx":
		records := make([][]interface{}, 0, len(rows))
		for i, r := range rows {
			records = append(records, []interface{}{
				i + 1, r.Kode, r.Nama, r.TotalQty, r.QtyReady, r.QtyNotReady,
			})
		}
		f, err := utils.WriteExcel("Laporan Inventaris", laporanHeader, records)
		if err != nil {
			respondError(c, err)
			return
		}
		defer f.Close()

		filename := utils.ExportFilename("laporan-inventaris", period, "xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Header("Content-Transfer-Encoding", "binary")
		if err := f.Write(c.Writer); err != nil {
			respondError(c, err)
		}

	default:
		utils.ValidationError(c, "Validasi", "format harus json, csv, atau xlsx")
	}
}
