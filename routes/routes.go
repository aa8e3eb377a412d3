package routes

import (
	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/controllers"
	"Gin_sqlite_redis_archive_tool/covers"
	"Gin_sqlite_redis_archive_tool/excel"
	"Gin_sqlite_redis_archive_tool/notify"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App, mail notify.Sender) {
	s := controllers.GetSrv(a, mail)
	uc := controllers.GetUserController(s)
	catCtl := controllers.GetCatalogController(s)
	boxCtl := controllers.GetBoxController(s)
	loanCtl := controllers.GetLoanController(s)

	importer := excel.NewImporter(a.Repo)
	exporter, err := excel.NewExporter(a.Config.ExportDir)
	if err != nil {
		panic(err)
	}
	excelCtl := controllers.GetExcelController(s, importer, exporter)
	coverCtl := controllers.GetCoverController(s, covers.NewRegistry())

	authMW := app.AuthRequired(a.AppSessions(), a.Repo)

	// QR labels and exports are plain files.
	r.Static("/qr", a.Config.QRDir)
	r.Static("/exports", a.Config.ExportDir)

	auth := r.Group("/auth")
	{
		auth.POST("/register", uc.Register)
		auth.POST("/login", uc.Login)
		auth.POST("/logout", uc.Logout)
		auth.POST("/forgot-password", uc.ForgotPassword)
		auth.POST("/reset-password/:token", uc.ResetPassword)
	}

	api := r.Group("/api", authMW)
	{
		api.GET("/me", uc.Me)
		api.POST("/me/password", uc.ChangePassword)
		api.POST("/me/email", uc.UpdateEmail)

		deps := api.Group("/departments")
		{
			deps.GET("", catCtl.ListDepartments)
			deps.POST("", catCtl.CreateDepartment)
			deps.PUT("/:id", catCtl.UpdateDepartment)
			deps.DELETE("/:id", catCtl.DeleteDepartment)
			deps.GET("/:id/cover", coverCtl.DepartmentCover)
		}
		types := api.Group("/types")
		{
			types.GET("", catCtl.ListBoxTypes)
			types.POST("", catCtl.CreateBoxType)
			types.PUT("/:id", catCtl.UpdateBoxType)
			types.DELETE("/:id", catCtl.DeleteBoxType)
		}
		warehouses := api.Group("/warehouses")
		{
			warehouses.GET("", catCtl.ListWarehouses)
			warehouses.POST("", catCtl.CreateWarehouse)
			warehouses.PUT("/:id", catCtl.UpdateWarehouse)
			warehouses.DELETE("/:id", catCtl.DeleteWarehouse)
		}
		locations := api.Group("/locations")
		{
			locations.GET("", catCtl.ListLocations)
			locations.POST("", catCtl.CreateLocation)
			locations.PUT("/:id", catCtl.UpdateLocation)
			locations.DELETE("/:id", catCtl.DeleteLocation)
		}

		boxes := api.Group("/boxes")
		{
			boxes.GET("", boxCtl.List) // ?q=&page=&size=
			boxes.POST("", boxCtl.Create)
			boxes.GET("/qr-range", boxCtl.QRRange) // ?start=&end=
			boxes.GET("/:id", boxCtl.Get)
			boxes.PUT("/:id", boxCtl.Update)
			boxes.DELETE("/:id", boxCtl.Delete)
			boxes.GET("/:id/cover", coverCtl.BoxCover)
		}

		loans := api.Group("/loans")
		{
			loans.GET("", loanCtl.List) // ?boxId=&status=
			loans.POST("", loanCtl.Create)
			loans.GET("/:id", loanCtl.Get)
			loans.PUT("/:id", loanCtl.Update)
			loans.DELETE("/:id", loanCtl.Delete)
			loans.POST("/:id/return", loanCtl.Return)
		}

		xls := api.Group("/excel")
		{
			xls.POST("/import", excelCtl.Import)
			xls.POST("/export", excelCtl.Export)
		}
	}
}
