package pkg

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"RequestPortal/internal/auth"
	"RequestPortal/internal/config"
	"RequestPortal/internal/department"
	"RequestPortal/internal/employee"
	"RequestPortal/internal/notification"
	"RequestPortal/internal/request"
	"RequestPortal/pkg/middleware"
)

// EchoModules wires the portal: storage, session, services, handlers and the
// HTTP server.
var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewStorageConfig),
	fx.Provide(config.NewFilesystem),
	fx.Provide(config.NewStore),
	fx.Provide(config.NewKV),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(auth.NewAccountRepository),
	fx.Provide(auth.NewSession),
	fx.Provide(auth.NewAuthService),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(department.NewDepartmentRepository),
	fx.Provide(department.NewDepartmentService),
	fx.Provide(department.NewDepartmentHandler),
	fx.Provide(employee.NewEmployeeRepository),
	fx.Provide(employee.NewEmployeeService),
	fx.Provide(employee.NewEmployeeHandler),
	fx.Provide(notification.NewNotificationService),
	fx.Provide(request.NewRequestRepository),
	fx.Provide(request.NewRequestService),
	fx.Provide(request.NewRequestHandler),
	fx.Provide(NewPageHandler),
	fx.Invoke(ResumeSession),
	fx.Invoke(RegisterRoutes))

// NewEchoServer starts the HTTP server under the fx lifecycle.
func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	port := ":8080"
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("portal running", "addr", "http://localhost"+port)
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("failed to start the server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down the server")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// ResumeSession re-establishes the session from the durable token before the
// first request, so a restart behaves like a page reload.
func ResumeSession(service *auth.UserService) {
	service.Resume()
}

// RegisterRoutes binds the navigation surface and the entity operations.
func RegisterRoutes(
	e *echo.Echo,
	session *auth.Session,
	pages *PageHandler,
	authHandler *auth.AuthHandler,
	departmentHandler *department.DepartmentHandler,
	employeeHandler *employee.EmployeeHandler,
	requestHandler *request.RequestHandler,
) {
	// Navigation surface: every page goes through the route guard.
	e.GET("/", pages.Home)
	e.GET("/pages/:route", pages.Navigate)

	// Public auth flow.
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/verify-email", authHandler.VerifyEmail)
	e.POST("/simulate-verify", authHandler.SimulateVerify)

	// Authenticated operations.
	protected := e.Group("/api", middleware.SessionMiddleware(session))
	protected.PUT("/profile", authHandler.UpdateProfile)
	protected.POST("/requests", requestHandler.Create)
	protected.GET("/requests", requestHandler.Mine)

	// Admin operations, each group gated by the same policy the route guard
	// enforces for its page.
	accounts := protected.Group("/accounts", middleware.AdminMiddleware(session, "accounts"))
	accounts.GET("", authHandler.ListAccounts)
	accounts.POST("", authHandler.CreateAccount)
	accounts.GET("/:id/edit", authHandler.EditAccount)
	accounts.POST("/cancel-edit", authHandler.CancelEditAccount)
	accounts.PUT("/:id/password", authHandler.ResetPassword)
	accounts.DELETE("/:id", authHandler.DeleteAccount)

	departments := protected.Group("/departments", middleware.AdminMiddleware(session, "departments"))
	departments.GET("", departmentHandler.List)
	departments.POST("", departmentHandler.Submit)
	departments.GET("/:id/edit", departmentHandler.Edit)
	departments.POST("/cancel-edit", departmentHandler.CancelEdit)
	departments.DELETE("/:id", departmentHandler.Delete)

	employees := protected.Group("/employees", middleware.AdminMiddleware(session, "employees"))
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.Submit)
	employees.GET("/:id/edit", employeeHandler.Edit)
	employees.POST("/cancel-edit", employeeHandler.CancelEdit)
	employees.DELETE("/:id", employeeHandler.Delete)

	adminRequests := protected.Group("/admin/requests", middleware.AdminMiddleware(session, "requests-admin"))
	adminRequests.GET("", requestHandler.All)
	adminRequests.PUT("/:id/status", requestHandler.SetStatus)
}
