package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/config"
	"github.com/Abhijeet357/case-management/internal/api/handler"
	"github.com/Abhijeet357/case-management/internal/api/middleware"
	"github.com/Abhijeet357/case-management/internal/workflow"
	"github.com/Abhijeet357/case-management/pkg/jwt"
	"github.com/Abhijeet357/case-management/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	admin := string(workflow.RoleAdmin)

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// authentication (authenticated)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// staff profiles
			users := authorized.Group("/users")
			{
				users.GET("/holders", h.User.Holders)
				users.GET("", middleware.RoleAuth(admin), h.User.List)
				users.POST("", middleware.RoleAuth(admin), h.User.Create)
				users.GET("/:id", middleware.RoleAuth(admin), h.User.Get)
				users.PUT("/:id", middleware.RoleAuth(admin), h.User.Update)
			}

			// cases
			cases := authorized.Group("/cases")
			{
				cases.POST("", h.Case.Register) // role enforced in the service
				cases.GET("", h.Case.List)
				cases.POST("/import", h.Case.ImportCSV)
				cases.POST("/reconcile-days", middleware.RoleAuth(admin), h.Case.ReconcileDays)
				cases.GET("/:uid", h.Case.Get)
				cases.POST("/:uid/move", h.Case.Move)
				cases.GET("/:uid/holders", h.Case.AvailableHolders)
			}

			// case classifications
			caseTypes := authorized.Group("/case-types")
			{
				caseTypes.GET("", h.CaseType.List)
				caseTypes.GET("/:id", h.CaseType.Get)
				caseTypes.GET("/:id/sub-categories", h.CaseType.SubCategories)
				caseTypes.POST("", middleware.RoleAuth(admin), h.CaseType.Create)
				caseTypes.PUT("/:id", middleware.RoleAuth(admin), h.CaseType.Update)
			}

			// record requisitions
			requisitions := authorized.Group("/requisitions")
			{
				requisitions.POST("", h.Requisition.Create)
				requisitions.GET("", h.Requisition.List)
				requisitions.GET("/:id", h.Requisition.Get)
				requisitions.POST("/:id/approve", h.Requisition.Approve)
				requisitions.POST("/:id/reject", h.Requisition.Reject)
				requisitions.POST("/:id/handover", h.Requisition.Handover)
				requisitions.POST("/:id/return-request", h.Requisition.RequestReturn)
				requisitions.POST("/:id/return-approve", h.Requisition.ApproveReturn)
				requisitions.POST("/:id/return-reject", h.Requisition.RejectReturn)
				requisitions.POST("/:id/return-acknowledge", h.Requisition.AcknowledgeReturn)
			}

			// record inventory
			records := authorized.Group("/records")
			{
				records.POST("", h.Record.Create)
				records.GET("", h.Record.List)
				records.GET("/:id", h.Record.Get)
				records.PUT("/:id/status", h.Record.Mark)
			}
			locations := authorized.Group("/locations")
			{
				locations.GET("", h.Record.ListLocations)
				locations.POST("", middleware.RoleAuth(admin), h.Record.CreateLocation)
			}

			// grievances
			grievances := authorized.Group("/grievances")
			{
				grievances.POST("", h.Grievance.Register)
				grievances.GET("", h.Grievance.List)
				grievances.GET("/:id", h.Grievance.Get)
				grievances.PUT("/:id", h.Grievance.Update)
				grievances.POST("/:id/escalate", h.Grievance.Escalate)
			}

			// pensioner master data
			ppos := authorized.Group("/ppos")
			{
				ppos.POST("", h.Master.CreatePPO)
				ppos.GET("", h.Master.ListPPOs)
				ppos.GET("/:number", h.Master.GetPPO)
				ppos.PUT("/:number", h.Master.UpdatePPO)
			}
			retiring := authorized.Group("/retiring-employees")
			{
				retiring.POST("", h.Master.CreateRetiringEmployee)
				retiring.GET("", h.Master.ListRetiring)
				retiring.POST("/:uid/generate-ppo", h.Master.GeneratePPO)
			}
			claims := authorized.Group("/claims")
			{
				claims.GET("", h.Master.ListClaims)
				claims.GET("/case/:uid", h.Master.GetClaim)
				claims.PUT("/case/:uid", h.Master.UpdateClaim)
			}

			// dashboard & exports
			authorized.GET("/dashboard", h.Dashboard.Summary)
			export := authorized.Group("/export")
			{
				export.GET("/cases", h.Export.CaseRegister)
				export.GET("/deadlines", h.Export.DeadlineCalendar)
			}

			// administration
			triggers := authorized.Group("/triggers", middleware.RoleAuth(admin))
			{
				triggers.GET("", h.Admin.ListTriggers)
				triggers.POST("", h.Admin.CreateTrigger)
				triggers.PUT("/:id", h.Admin.UpdateTrigger)
			}
			systemConfig := authorized.Group("/system-config")
			{
				systemConfig.GET("", h.Admin.GetConfig)
				systemConfig.PUT("", middleware.RoleAuth(admin), h.Admin.UpdateConfig)
			}
		}
	}

	return r
}
