package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaan/internlink/internal/app/controllers"
	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	internshipController *controllers.InternshipController,
	applicationController *controllers.ApplicationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/users/me", userController.Me)

	// Routes shared by representatives and staff; ownership is checked in
	// the controller because staff may view any internship.
	authenticated.GET("/internships/:id", internshipController.GetByID)
	authenticated.GET("/internships/:id/applications", applicationController.ByInternship)

	// Student routes
	student := authenticated.Group("")
	student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/internships", internshipController.Browse)

		student.POST("/applications", applicationController.Submit)
		student.GET("/applications/me", applicationController.Mine)
		student.POST("/applications/:id/accept", applicationController.Accept)
		student.POST("/applications/:id/withdrawal", applicationController.RequestWithdrawal)
	}

	// Company representative routes
	representative := authenticated.Group("")
	representative.Use(authMiddleware.RoleRequired(string(models.RoleRepresentative)))
	{
		representative.POST("/internships", internshipController.Create)
		representative.GET("/internships/mine", internshipController.Mine)
		representative.PUT("/internships/:id", internshipController.Update)
		representative.DELETE("/internships/:id", internshipController.Delete)
		representative.PUT("/internships/:id/visibility", internshipController.SetVisibility)

		representative.GET("/applications/incoming", applicationController.Incoming)
		representative.POST("/applications/:id/approve", applicationController.Approve)
		representative.POST("/applications/:id/reject", applicationController.Reject)
	}

	// Career center staff routes
	staff := authenticated.Group("")
	staff.Use(authMiddleware.RoleRequired(string(models.RoleStaff)))
	{
		staff.GET("/representatives/pending", userController.PendingRepresentatives)
		staff.POST("/representatives/:id/approve", userController.ApproveRepresentative)

		staff.GET("/internships/all", internshipController.All)
		staff.GET("/internships/pending", internshipController.Pending)
		staff.GET("/internships/statistics", internshipController.Statistics)
		staff.POST("/internships/:id/approve", internshipController.Approve)
		staff.POST("/internships/:id/reject", internshipController.Reject)

		staff.GET("/applications/withdrawal-requests", applicationController.WithdrawalRequests)
		staff.GET("/applications/statistics", applicationController.Statistics)
		staff.POST("/applications/:id/withdrawal/approve", applicationController.ApproveWithdrawal)
		staff.POST("/applications/:id/withdrawal/reject", applicationController.RejectWithdrawal)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
