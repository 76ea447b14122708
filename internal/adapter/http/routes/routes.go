package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "logibook/docs" // This will be auto-generated
	"logibook/internal/adapter/http/handlers"
	repository2 "logibook/internal/adapter/persistence/repository"
	"logibook/internal/adapter/tabular"
	"logibook/internal/infrastructure/database"
	"logibook/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, customerRepo, serviceRepo)
	importUseCase := usecase.NewBookingImportUseCase(tabular.NewDecoder(), customerUseCase, serviceRepo, bookingUseCase)
	analyticsUseCase := usecase.NewAnalyticsUseCase(bookingRepo, customerRepo, serviceRepo)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	importHandler := handlers.NewBookingImportHandler(importUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSupplyChainRoutes(v1, customerHandler, serviceHandler, bookingHandler, importHandler, analyticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		var origins []string
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}
