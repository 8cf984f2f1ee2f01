package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/config"
	"github.com/roznerx/guater-sub000/controllers"
	"github.com/roznerx/guater-sub000/middlewares"
	"github.com/roznerx/guater-sub000/services"
)

// SetupRouter builds the service graph and mounts every route. The DB
// handle and hub come in from main; nothing here reaches for globals.
func SetupRouter(db *gorm.DB, cfg *config.Config, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authSvc := services.NewAuthService(db)
	profileSvc := services.NewProfileService(db)
	waterSvc := services.NewWaterLogService(db, hub)
	diureticSvc := services.NewDiureticLogService(db)
	presetSvc := services.NewPresetService(db)
	summarySvc := services.NewSummaryService(db)
	accountSvc := services.NewAccountService(db)

	authCtl := controllers.NewAuthController(authSvc)
	profileCtl := controllers.NewProfileController(profileSvc)
	waterCtl := controllers.NewWaterLogController(waterSvc, profileSvc)
	diureticCtl := controllers.NewDiureticLogController(diureticSvc, profileSvc)
	presetCtl := controllers.NewPresetController(presetSvc)
	summaryCtl := controllers.NewSummaryController(summarySvc)
	accountCtl := controllers.NewAccountController(accountSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(db))
	{
		user := api.Group("/user")
		{
			user.GET("/profile", profileCtl.Get)
			user.PUT("/profile", profileCtl.Update)
			user.POST("/onboarding", profileCtl.CompleteOnboarding)
			user.GET("/recommendation", profileCtl.Recommendation)
			user.GET("/goal-check", profileCtl.CheckGoal)
			user.PUT("/password", authCtl.UpdatePassword)
		}

		logs := api.Group("/logs")
		{
			logs.POST("/water", waterCtl.Create)
			logs.GET("/water", waterCtl.List)
			logs.PUT("/water/:id", waterCtl.Update)
			logs.DELETE("/water/:id", waterCtl.Delete)
			logs.DELETE("/water/clear-day", waterCtl.ClearDay)

			logs.POST("/diuretic", diureticCtl.Create)
			logs.GET("/diuretic", diureticCtl.List)
			logs.DELETE("/diuretic/:id", diureticCtl.Delete)
		}

		presets := api.Group("/presets")
		{
			presets.GET("/water", presetCtl.ListWater)
			presets.POST("/water", presetCtl.CreateWater)
			presets.DELETE("/water/:id", presetCtl.DeleteWater)

			presets.GET("/diuretic", presetCtl.ListDiuretic)
			presets.POST("/diuretic", presetCtl.CreateDiuretic)
			presets.DELETE("/diuretic/:id", presetCtl.DeleteDiuretic)
		}

		summary := api.Group("/summary")
		{
			summary.GET("/daily", summaryCtl.Daily)
			summary.GET("/monthly", summaryCtl.Monthly)
			summary.GET("/streak", summaryCtl.Streak)
		}

		api.DELETE("/account/data", accountCtl.DeleteData)
		api.POST("/account/deactivate", accountCtl.Deactivate)
		api.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
