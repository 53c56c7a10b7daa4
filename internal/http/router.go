// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"concierge/internal/http/handlers"
	"concierge/internal/http/middleware"
	"concierge/internal/modules/booking"
	"concierge/internal/modules/conversation"
)

type RouterDeps struct {
	Chat     *conversation.Service
	Bookings *booking.Service
	Log      *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))

	chatHandler := handlers.NewChatHandler(deps.Chat)
	r.POST("/api/chat", chatHandler.Chat)

	bookingHandler := handlers.NewBookingHandler(deps.Bookings)
	r.POST("/api/bookings", bookingHandler.Create)
	r.GET("/api/bookings", bookingHandler.List)
	r.GET("/api/bookings/:id", bookingHandler.Get)
	r.DELETE("/api/bookings/:id", bookingHandler.Cancel)
	r.POST("/api/bookings/search", bookingHandler.Search)
	r.GET("/api/stats", bookingHandler.Stats)

	r.GET("/health", handlers.Health)

	return r
}
