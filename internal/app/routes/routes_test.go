package routes

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/controllers"
	"github.com/unibecas/sibeca/internal/middleware"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

func buildRouter(environment string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:  "test-secret",
		SessionExp: time.Hour,
	})

	SetupRouter(router,
		controllers.NewAuthController(nil, jwtService, "sibeca_session", false),
		controllers.NewAttendanceController(nil),
		controllers.NewStudentController(nil),
		controllers.NewSupervisorController(nil),
		controllers.NewAdminController(nil),
		middleware.NewAuthMiddleware(jwtService, "sibeca_session"),
		environment,
	)
	return router
}

func hasRoute(router *gin.Engine, method, path string) bool {
	for _, route := range router.Routes() {
		if route.Method == method && route.Path == path {
			return true
		}
	}
	return false
}

func TestSwaggerRouteOnlyOutsideProduction(t *testing.T) {
	if !hasRoute(buildRouter("development"), "GET", "/swagger/*any") {
		t.Error("swagger route missing in development mode")
	}
	if hasRoute(buildRouter("production"), "GET", "/swagger/*any") {
		t.Error("swagger route mounted in production mode")
	}
}

func TestCoreRoutesRegisteredInProduction(t *testing.T) {
	router := buildRouter("production")

	for _, route := range []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"POST", "/api/login"},
		{"POST", "/checkin"},
		{"POST", "/checkout"},
		{"GET", "/sesion-activa"},
		{"GET", "/registros-pendientes"},
		{"POST", "/confirmar-registro"},
		{"GET", "/api/admin/resumen"},
	} {
		if !hasRoute(router, route.method, route.path) {
			t.Errorf("route %s %s not registered", route.method, route.path)
		}
	}
}
