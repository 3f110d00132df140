package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/logiteam/logiteam-api/internal/config"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// Handlers groups the area handlers mounted by the router.
type Handlers struct {
	Auth       *AuthHandler
	Requests   *RequestsHandler
	Attendance *AttendanceHandler
	Teams      *TeamsHandler
	Calendar   *CalendarHandler
	Reports    *ReportsHandler
	Health     *HealthHandler
}

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(cfg *config.Config, h Handlers, resolver ActorResolver, log *logger.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Health.Health)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/login", h.Auth.Login)

	authed := v1.Group("")
	authed.Use(AuthRequired(resolver, log))
	{
		authed.GET("/auth/me", h.Auth.Me)

		authed.POST("/leave", h.Requests.SubmitLeave)
		authed.GET("/leave", h.Requests.ListOwnLeave)
		authed.GET("/leave/pending", h.Requests.ListPendingLeave)
		authed.PATCH("/leave/:id/status", h.Requests.SetLeaveStatus)

		authed.POST("/overtime", h.Requests.SubmitOvertime)
		authed.GET("/overtime", h.Requests.ListOwnOvertime)
		authed.GET("/overtime/pending", h.Requests.ListPendingOvertime)
		authed.PATCH("/overtime/:id/status", h.Requests.SetOvertimeStatus)

		authed.POST("/attendance/check-in", h.Attendance.CheckIn)
		authed.POST("/attendance/check-out", h.Attendance.CheckOut)
		authed.GET("/attendance/today", h.Attendance.Today)
		authed.GET("/attendance/history", h.Attendance.History)

		authed.POST("/teams", h.Teams.CreateTeam)
		authed.GET("/teams", h.Teams.ListTeams)
		authed.GET("/profiles", h.Teams.ListProfiles)
		authed.PATCH("/profiles/:id", h.Teams.UpdateProfile)

		authed.GET("/calendar", h.Calendar.Range)

		authed.GET("/reports/attendance", h.Reports.AttendanceReport)
		authed.GET("/reports/leave", h.Reports.LeaveReport)
		authed.GET("/dashboard", h.Reports.Dashboard)
	}

	return r
}
