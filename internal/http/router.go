// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"drivehire/internal/http/handlers"
	"drivehire/internal/http/middleware"
	"drivehire/internal/modules/auth"
	"drivehire/internal/modules/booking"
	"drivehire/internal/modules/document"
	"drivehire/internal/modules/profile"
)

type RouterDeps struct {
	Auth      *auth.Service
	Booking   *booking.Service
	Drafts    *booking.DraftStore
	Profile   *profile.Service
	Documents *document.Service
	Places    handlers.PlaceSearcher
	City      string
	Log       *logrus.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	authHandler := handlers.NewAuthHandler(deps.Auth)
	r.POST("/api/auth/signup", authHandler.SignUp)
	r.POST("/api/auth/signin", authHandler.SignIn)
	r.POST("/api/auth/send-code", authHandler.SendCode)
	r.POST("/api/auth/verify-code", authHandler.VerifyCode)
	r.POST("/api/auth/reset-password", authHandler.ResetPassword)

	tariffHandler := handlers.NewTariffHandler()
	r.GET("/api/tariffs", tariffHandler.List)
	r.GET("/api/tariffs/night-surcharge", tariffHandler.NightSurcharge)
	r.GET("/api/tariffs/:vehicleType", tariffHandler.Get)

	authed := r.Group("/api", middleware.Auth(deps.Auth))
	authed.POST("/auth/signout", authHandler.SignOut)

	bookingHandler := handlers.NewBookingHandler(deps.Booking, deps.Drafts)
	authed.POST("/bookings", bookingHandler.Create)
	authed.GET("/bookings", bookingHandler.ListMine)
	authed.GET("/bookings/draft", bookingHandler.GetDraft)
	authed.PUT("/bookings/draft", bookingHandler.SaveDraft)
	authed.DELETE("/bookings/draft", bookingHandler.ClearDraft)
	authed.GET("/bookings/:id", bookingHandler.Get)
	authed.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	driverHandler := handlers.NewDriverHandler(deps.Booking, deps.Profile)
	drivers := authed.Group("/driver", middleware.RequireRole("driver"))
	drivers.GET("/bookings", driverHandler.ListAvailable)
	drivers.POST("/bookings/:id/claim", driverHandler.Claim)
	drivers.POST("/bookings/:id/start", driverHandler.Start)
	drivers.POST("/bookings/:id/complete", driverHandler.Complete)

	profileHandler := handlers.NewProfileHandler(deps.Profile, deps.Documents)
	authed.GET("/profile", profileHandler.Me)
	authed.PUT("/profile", profileHandler.Update)
	authed.POST("/profile/documents/:docType", profileHandler.UploadDocument)

	admin := authed.Group("/admin", middleware.RequireRole("admin"))
	admin.POST("/profiles/:id/documents/:docType/verify", profileHandler.VerifyDocument)

	if deps.Places != nil {
		placesHandler := handlers.NewPlacesHandler(deps.Places, deps.City)
		authed.GET("/places/autocomplete", placesHandler.Autocomplete)
	}

	return r
}
