package routes

import (
	"logibook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathServices  = "/services"
	PathBookings  = "/bookings"
	PathUpload    = "/upload"
	PathAnalytics = "/analytics"
)

func addSupplyChainRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	serviceHandler *handlers.ServiceHandler,
	bookingHandler *handlers.BookingHandler,
	importHandler *handlers.BookingImportHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.GetCustomers)
		customers.GET("/:customer_id", customerHandler.GetCustomerByID)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.GetServices)
		services.GET("/:service_id", serviceHandler.GetServiceByID)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.GetBookings)
		bookings.GET("/:booking_id", bookingHandler.GetBookingByID)
		bookings.PUT("/:booking_id", bookingHandler.UpdateBooking)
	}

	upload := rg.Group(PathUpload)
	{
		upload.POST("/bookings", importHandler.UploadBookings)
	}

	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/delivery-performance", analyticsHandler.GetDeliveryPerformance)
		analytics.GET("/overview", analyticsHandler.GetOverview)
	}
}
