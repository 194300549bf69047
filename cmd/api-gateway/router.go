// Package main 是应用程序入口
package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/config"
	"github.com/dumeirei/hotel-ops-backend/internal/common/metrics"
	commonMiddleware "github.com/dumeirei/hotel-ops-backend/internal/common/middleware"
	bookingHandler "github.com/dumeirei/hotel-ops-backend/internal/handler/booking"
	clientHandler "github.com/dumeirei/hotel-ops-backend/internal/handler/client"
	feedbackHandler "github.com/dumeirei/hotel-ops-backend/internal/handler/feedback"
	hotelHandler "github.com/dumeirei/hotel-ops-backend/internal/handler/hotel"
	serviceHandler "github.com/dumeirei/hotel-ops-backend/internal/handler/service"
	"github.com/dumeirei/hotel-ops-backend/internal/middleware"
	"github.com/dumeirei/hotel-ops-backend/internal/repository"
)

// setupRouter 设置路由
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
) {
	// 初始化仓储
	clientRepo := repository.NewClientRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentTypeRepo := repository.NewPaymentTypeRepository(db)
	stayRepo := repository.NewStayRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	serviceUsageRepo := repository.NewServiceUsageRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// 初始化处理器
	clientH := clientHandler.NewHandler(clientRepo)
	hotelH := hotelHandler.NewHandler(hotelRepo, roomTypeRepo, roomRepo)
	bookingH := bookingHandler.NewHandler(bookingRepo, stayRepo, paymentTypeRepo)
	serviceH := serviceHandler.NewHandler(serviceRepo, serviceUsageRepo)
	feedbackH := feedbackHandler.NewHandler(feedbackRepo)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.CORS(nil))
	r.Use(middleware.AccessLog(logger))

	// 监控指标
	if cfg.Metrics.Enabled {
		m := metrics.Init(cfg.Server.Name)
		r.Use(m.Middleware())
		r.GET("/metrics", metrics.Handler())
	}

	// 链路追踪
	if cfg.Tracing.Enabled {
		r.Use(commonMiddleware.Tracing(&commonMiddleware.TracingConfig{
			ServiceName: cfg.Tracing.ServiceName,
			SkipPaths:   []string{"/health", "/ping", "/ready", "/metrics"},
		}))
	}

	// 健康检查
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		clients := v1.Group("/clients")
		{
			clients.GET("", clientH.ListClients)
			clients.GET("/:id", clientH.GetClient)
			clients.POST("", clientH.CreateClient)
			clients.PUT("/:id", clientH.UpdateClient)
			clients.DELETE("/:id", clientH.DeleteClient)
		}

		hotels := v1.Group("/hotels")
		{
			hotels.GET("", hotelH.ListHotels)
			hotels.GET("/:id", hotelH.GetHotel)
			hotels.POST("", hotelH.CreateHotel)
			hotels.PUT("/:id", hotelH.UpdateHotel)
			hotels.DELETE("/:id", hotelH.DeleteHotel)
		}

		roomTypes := v1.Group("/room-types")
		{
			roomTypes.GET("", hotelH.ListRoomTypes)
			roomTypes.GET("/:id", hotelH.GetRoomType)
			roomTypes.POST("", hotelH.CreateRoomType)
			roomTypes.PUT("/:id", hotelH.UpdateRoomType)
			roomTypes.DELETE("/:id", hotelH.DeleteRoomType)
		}

		rooms := v1.Group("/rooms")
		{
			rooms.GET("", hotelH.ListRooms)
			rooms.GET("/:id", hotelH.GetRoom)
			rooms.POST("", hotelH.CreateRoom)
			rooms.PUT("/:id", hotelH.UpdateRoom)
			rooms.DELETE("/:id", hotelH.DeleteRoom)
		}

		bookings := v1.Group("/bookings")
		{
			bookings.GET("", bookingH.ListBookings)
			bookings.GET("/:id", bookingH.GetBooking)
			bookings.POST("", bookingH.CreateBooking)
			bookings.PUT("/:id", bookingH.UpdateBooking)
			bookings.DELETE("/:id", bookingH.DeleteBooking)
		}

		paymentTypes := v1.Group("/payment-types")
		{
			paymentTypes.GET("", bookingH.ListPaymentTypes)
			paymentTypes.GET("/:id", bookingH.GetPaymentType)
			paymentTypes.POST("", bookingH.CreatePaymentType)
			paymentTypes.PUT("/:id", bookingH.UpdatePaymentType)
			paymentTypes.DELETE("/:id", bookingH.DeletePaymentType)
		}

		stays := v1.Group("/stays")
		{
			stays.GET("", bookingH.ListStays)
			stays.GET("/:id", bookingH.GetStay)
			stays.POST("", bookingH.CreateStay)
			stays.PUT("/:id", bookingH.UpdateStay)
			stays.DELETE("/:id", bookingH.DeleteStay)
		}

		services := v1.Group("/services")
		{
			services.GET("", serviceH.ListServices)
			services.GET("/:id", serviceH.GetService)
			services.POST("", serviceH.CreateService)
			services.PUT("/:id", serviceH.UpdateService)
			services.DELETE("/:id", serviceH.DeleteService)
		}

		serviceUsages := v1.Group("/service-usages")
		{
			serviceUsages.GET("", serviceH.ListServiceUsages)
			serviceUsages.GET("/:id", serviceH.GetServiceUsage)
			serviceUsages.POST("", serviceH.CreateServiceUsage)
			serviceUsages.PUT("/:id", serviceH.UpdateServiceUsage)
			serviceUsages.DELETE("/:id", serviceH.DeleteServiceUsage)
		}

		feedbacks := v1.Group("/feedbacks")
		{
			feedbacks.GET("", feedbackH.ListFeedbacks)
			feedbacks.GET("/:id", feedbackH.GetFeedback)
			feedbacks.POST("", feedbackH.CreateFeedback)
			feedbacks.PUT("/:id", feedbackH.UpdateFeedback)
			feedbacks.DELETE("/:id", feedbackH.DeleteFeedback)
		}
	}
}
