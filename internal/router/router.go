package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"HRDesk/config"
	"HRDesk/internal/handler"
	"HRDesk/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	if config.Cfg.TracingEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}
	if config.Cfg.CSRFEnabled {
		middleware.RegisterCSRF(h)
	}

	// 认证相关路由
	hr := h.Group("/hr")
	hr.Use(middleware.AuthRateLimitMiddleware()) // 认证接口限流
	{
		hr.POST("/signup", handler.SignUp)
		hr.POST("/signin", handler.SignIn)
		hr.POST("/token/refresh", handler.RefreshToken)
	}

	// 邮箱验证码路由
	otp := h.Group("/otp")
	otp.Use(middleware.OTPRateLimitMiddleware())
	{
		otp.POST("/send-email-otp", handler.SendEmailOTP)
		otp.POST("/verify-email-otp", handler.VerifyEmailOTP)
	}

	// 以下路由组需要鉴权
	authed := h.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.Use(middleware.GeneralRateLimitMiddleware())

	authed.POST("/hr/signout", handler.SignOut)

	// 候选人路由
	candidates := authed.Group("/candidate")
	{
		candidates.POST("/list", handler.ListCandidates)
		candidates.POST("/add-candidate", handler.AddCandidate)
		candidates.POST("/:id/update", handler.UpdateCandidate)
		candidates.GET("/:id/resume", handler.DownloadResume)
	}

	// 员工路由
	employees := authed.Group("/employee")
	{
		employees.POST("/list", handler.ListEmployees)
		employees.POST("/:id/update", handler.UpdateEmployee)
		employees.POST("/search", handler.SearchEmployees)
	}

	// 考勤路由
	attendance := authed.Group("/attendance")
	{
		attendance.POST("/list", handler.ListAttendance)
		attendance.POST("/mark", handler.MarkAttendance)
		attendance.POST("/:id/update", handler.UpdateAttendance)
	}

	// 请假路由
	leaves := authed.Group("/leave")
	{
		leaves.POST("/list", handler.ListLeaves)
		leaves.POST("/add-leave", handler.AddLeave)
		leaves.POST("/:id/update", handler.UpdateLeave)
		leaves.POST("/calendar", handler.LeaveCalendar)
		leaves.GET("/:id/document", handler.DownloadLeaveDocument)
	}

	// 职位目录
	authed.GET("/position/list", handler.ListPositions)
}
