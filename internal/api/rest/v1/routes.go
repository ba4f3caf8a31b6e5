package v1

import (
	"net/http"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services exposed over REST
type Services struct {
	Equipment  equipment.EquipmentService
	Labels     equipment.LabelService
	Cardek     cardek.CardekService
	Loans      instruments.InstrumentLoanService
	NCRs       ncr.NCRService
	Users      users.UserService
	Uploads    files.UploadService
	Reports    reports.ReportService
	Monitoring monitoring.MonitoringService
}

// SetupRoutes sets up all the API routes for version 1.
// A nil tokenIssuer disables authentication.
func SetupRoutes(r *gin.Engine, services *Services, tokenIssuer users.TokenIssuer) {
	v1 := r.Group(BasePath)

	v1.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
	})

	userHandler := NewUserHandler(services.Users, services.Uploads)
	v1.POST("/auth/login", userHandler.Login)

	api := v1.Group("")
	admin := v1.Group("")
	if tokenIssuer != nil {
		api.Use(Authenticate(tokenIssuer))
		admin.Use(Authenticate(tokenIssuer), RequireAdmin())
	}

	// Equipment Routes
	equipmentHandler := NewEquipmentHandler(services.Equipment, services.Labels, services.Cardek)
	api.POST("/equipment", equipmentHandler.Create)
	api.GET("/equipment", equipmentHandler.List)
	api.GET("/equipment/jft/:jftNo", equipmentHandler.GetByJFTNo)
	api.GET("/equipment/:id", equipmentHandler.GetByID)
	api.PUT("/equipment/:id", equipmentHandler.Update)
	api.DELETE("/equipment/:id", equipmentHandler.DeleteByID)
	api.POST("/equipment/:id/extend", equipmentHandler.Extend)
	api.GET("/equipment/:id/label", equipmentHandler.Label)
	api.GET("/equipment/:id/cardek", equipmentHandler.ListCardek)
	api.POST("/equipment/:id/cardek", equipmentHandler.CreateCardek)

	// Cardek Routes
	cardekHandler := NewCardekHandler(services.Cardek)
	api.GET("/cardek/:id", cardekHandler.GetByID)
	api.PUT("/cardek/:id", cardekHandler.Update)
	api.DELETE("/cardek/:id", cardekHandler.DeleteByID)

	// Instrument Routes
	instrumentHandler := NewInstrumentHandler(services.Loans)
	api.GET("/instruments", instrumentHandler.List)
	api.POST("/instruments/issue", instrumentHandler.Issue)
	api.GET("/instruments/:id", instrumentHandler.GetByID)
	api.POST("/instruments/:id/return", instrumentHandler.Return)
	api.DELETE("/instruments/:id", instrumentHandler.DeleteByID)

	// NCR Routes
	ncrHandler := NewNCRHandler(services.NCRs)
	api.POST("/ncrs", ncrHandler.Create)
	api.GET("/ncrs", ncrHandler.List)
	api.GET("/ncrs/:id", ncrHandler.GetByID)
	api.PUT("/ncrs/:id", ncrHandler.Update)
	api.POST("/ncrs/:id/close", ncrHandler.Close)
	api.DELETE("/ncrs/:id", ncrHandler.DeleteByID)

	// Report Routes
	reportHandler := NewReportHandler(services.Reports)
	api.GET("/reports/ncr", reportHandler.NCR)
	api.GET("/reports/instruments", reportHandler.Instruments)

	// Upload Routes
	uploadHandler := NewUploadHandler(services.Uploads)
	api.POST("/uploads/equipment", uploadHandler.UploadEquipment)
	api.POST("/uploads/instruments/:kind", uploadHandler.UploadInstrument)
	api.POST("/uploads/profiles", uploadHandler.UploadProfile)
	api.GET("/files/*path", uploadHandler.ServeFile)

	// Dashboard Routes
	dashboardHandler := NewDashboardHandler(services.Monitoring)
	api.GET("/dashboard/calibration", dashboardHandler.Calibration)

	// User Routes
	api.POST("/users/:id/profile-image", userHandler.SetProfileImage)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.GetByID)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.DeleteByID)
}
