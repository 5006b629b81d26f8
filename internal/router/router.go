package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"healthease/internal/config"
	"healthease/internal/errors"
	"healthease/internal/handler"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Pages   *handler.PageHandler
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
	Booking *handler.BookingHandler
	API     *handler.APIHandler
	Seed    *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if len(cfg.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.CORSOrigins,
			AllowCredentials: true,
		}))
	}
	e.Use(handler.ClientIDMiddleware(cfg.CookieSecure))

	// Add validator
	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Pages
	e.GET("/", h.Pages.Home)
	e.GET("/features", h.Pages.Features)
	e.GET("/doctors", h.Pages.Doctors)
	e.GET("/book", h.Pages.Book)
	e.GET("/dashboard", h.Pages.Dashboard)
	e.POST("/appointments", h.Booking.Submit)

	e.GET("/login", h.Auth.LoginPage)
	e.POST("/login", h.Auth.Login)
	e.POST("/register", h.Auth.Register)
	e.POST("/logout", h.Auth.Logout)

	e.GET("/admin/login", h.Admin.LoginPage)
	e.POST("/admin/login", h.Admin.Login)
	e.GET("/admin", h.Admin.Panel)
	e.POST("/admin/logout", h.Admin.Logout)

	api := e.Group("/api/v1")

	// Session routes
	api.POST("/auth/login", h.API.Login)
	api.POST("/auth/register", h.API.Register)
	api.POST("/auth/logout", h.API.Logout)
	api.GET("/doctors", h.API.Doctors)
	api.GET("/doctors/featured", h.API.FeaturedDoctors)
	api.POST("/admin/seed", h.Seed.Seed)

	// Routes that also accept the caller's own bearer token
	bearer := api.Group("")
	if cfg.JWTSecret != "" {
		bearer.Use(echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			NewClaimsFunc: func(echo.Context) jwt.Claims {
				return jwt.MapClaims{}
			},
			Skipper: func(c echo.Context) bool {
				return c.Request().Header.Get(echo.HeaderAuthorization) == ""
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid or expired token",
					Code:  "INVALID_TOKEN",
				})
			},
		}))
	}
	bearer.GET("/session", h.API.Session)
	bearer.POST("/appointments", h.API.BookAppointment)
	bearer.GET("/dashboard/stats", h.API.DashboardStats)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the validator the router installs on echo.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
