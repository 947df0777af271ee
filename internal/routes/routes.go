package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/handlers"
	"github.com/gyver-dev/wedding-planner/internal/repository"
)

func RegisterRoutes(r *gin.Engine, gw *db.DB) {

	// repositories
	users := repository.NewUserRepo(gw)
	services := repository.NewServiceRepo(gw)
	bookings := repository.NewBookingRepo(gw)
	requests := repository.NewRequestRepo(gw)

	// handlers
	authHandler := handlers.NewAuthHandler(users)
	serviceHandler := handlers.NewServiceHandler(services)
	bookingHandler := handlers.NewBookingHandler(bookings)
	requestHandler := handlers.NewRequestHandler(requests)

	// users
	r.POST("/adduser", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// services
	r.POST("/addservice", serviceHandler.Create)
	r.GET("/services", serviceHandler.ListAll)
	r.GET("/services/:userId", serviceHandler.ListByUser)
	r.PUT("/service/:serviceId", serviceHandler.Update)
	r.DELETE("/service/:serviceId", serviceHandler.Delete)

	// bookings and contact requests
	r.POST("/addbooking", bookingHandler.Create)
	r.POST("/addrequest", requestHandler.Create)
}
