package routes

import (
	"github.com/usefulcoin6611/hpc-sub000/controllers"
	"github.com/usefulcoin6611/hpc-sub000/middlewares"
	"github.com/usefulcoin6611/hpc-sub000/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		auth := api.Group("/", middlewares.AuthMiddleware())
		{
			auth.GET("/auth/profile", controllers.Profile)

			// Master data barang; tulis hanya admin/supervisor
			barang := auth.Group("/barang")
			{
				barang.GET("", controllers.GetAllBarang)
				barang.GET("/:id", controllers.GetBarangByID)
				barang.POST("", middlewares.RequireRole(models.RoleSupervisor), controllers.CreateBarang)
				barang.PUT("/:id", middlewares.RequireRole(models.RoleSupervisor), controllers.UpdateBarang)
				barang.DELETE("/:id", middlewares.RequireRole(models.RoleSupervisor), controllers.DeleteBarang)
			}

			barangMasuk := auth.Group("/barang-masuk")
			{
				barangMasuk.GET("", controllers.GetAllBarangMasuk)
				barangMasuk.POST("", controllers.CreateBarangMasuk)
				barangMasuk.PUT("", controllers.UpdateBarangMasuk)
				barangMasuk.DELETE("", controllers.DeleteBarangMasuk)
			}

			barangKeluar := auth.Group("/barang-keluar")
			{
				barangKeluar.GET("", controllers.GetAllBarangKeluar)
				barangKeluar.GET("/no-seri", controllers.SearchNoSeri)
				barangKeluar.POST("", controllers.CreateBarangKeluar)
				barangKeluar.PUT("", controllers.UpdateBarangKeluar)
				barangKeluar.DELETE("", controllers.DeleteBarangKeluar)
			}

			// Lembar kerja per no seri; gate per-role ada di handler
			transaksi := auth.Group("/transaksi")
			{
				transaksi.GET("", controllers.GetTransaksi)
				transaksi.POST("", controllers.SaveTransaksi)
			}

			auth.POST("/approval", middlewares.RequireRole(models.RoleSupervisor), controllers.Approval)

			users := auth.Group("/users", middlewares.RequireRole())
			{
				users.GET("", controllers.GetAllUsers)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			auth.GET("/laporan/inventaris", controllers.LaporanInventaris)
		}
	}
}
