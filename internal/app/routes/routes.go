package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/unibecas/sibeca/internal/app/controllers"
	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	attendanceController *controllers.AttendanceController,
	studentController *controllers.StudentController,
	supervisorController *controllers.SupervisorController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	environment string,
) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now().Format(time.RFC3339),
			"environment": environment,
		})
	})

	// Swagger UI, non-production only: doc.json needs the docs package that
	// swag init generates, which deployments do not carry.
	if environment != "production" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// --- Public auth routes ---
	api := router.Group("/api")
	{
		api.POST("/login", authController.Login)
		api.GET("/sesion", authController.Session)
		api.POST("/logout", authController.Logout)
	}

	// --- Student lifecycle routes (root-level paths the page scripts call) ---
	student := router.Group("")
	student.Use(authMiddleware.SessionAuth(), authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.POST("/checkin", attendanceController.CheckIn)
		student.POST("/checkout", attendanceController.CheckOut)
		student.GET("/sesion-activa", attendanceController.ActiveSession)
	}

	// --- Supervisor decision routes ---
	supervisor := router.Group("")
	supervisor.Use(authMiddleware.SessionAuth(), authMiddleware.RoleRequired(models.RoleSupervisor))
	{
		supervisor.GET("/registros-pendientes", attendanceController.PendingRecords)
		supervisor.GET("/registro/:id", attendanceController.RecordDetail)
		supervisor.POST("/confirmar-registro", attendanceController.ResolveRecord)
	}

	// --- Student dashboard routes ---
	studentAPI := api.Group("/alumno")
	studentAPI.Use(authMiddleware.SessionAuth(), authMiddleware.RoleRequired(models.RoleStudent))
	{
		studentAPI.GET("/datos", studentController.Profile)
		studentAPI.GET("/asistencias", attendanceController.History)
	}

	// --- Supervisor dashboard routes ---
	supervisorAPI := api.Group("/jefe")
	supervisorAPI.Use(authMiddleware.SessionAuth(), authMiddleware.RoleRequired(models.RoleSupervisor))
	{
		supervisorAPI.GET("/datos", supervisorController.Profile)
		supervisorAPI.GET("/alumnos", supervisorController.Students)
	}

	// --- Admin routes ---
	adminAPI := api.Group("/admin")
	adminAPI.Use(authMiddleware.SessionAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		adminAPI.GET("/resumen", adminController.Summary)
		adminAPI.GET("/alumnos", adminController.Students)
		adminAPI.GET("/alumno/:id", adminController.StudentDetail)
		adminAPI.POST("/alumno", adminController.SaveStudent)
		adminAPI.GET("/jefes", adminController.Supervisors)
		adminAPI.GET("/jefe/:id", adminController.SupervisorDetail)
		adminAPI.POST("/jefe", adminController.SaveSupervisor)
		adminAPI.POST("/toggle-alumno", adminController.ToggleStudent)
		adminAPI.POST("/toggle-jefe", adminController.ToggleSupervisor)
	}
}
