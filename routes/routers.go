package routes

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"savanna/config"
	"savanna/constants"
	"savanna/controllers"
	"savanna/middleware"
	"savanna/response"
	"savanna/services"
	"savanna/services/logger"
	"savanna/services/notification"
	"savanna/storage"
)

const maxUploadBytes = 10 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SetupRoutes wires every controller into the API surface.
func SetupRoutes(app *config.App, store *storage.Store) {
	notifier := notification.NewMelodyService(app.Melody)
	bookingService := services.NewBookingService(store, logger.NewDefaultLogger(logger.InfoLevel))

	authController := controllers.NewAuthController(store)
	propertyController := controllers.NewPropertyController(store, app.Redis)
	roomController := controllers.NewRoomController(store)
	bookingController := controllers.NewBookingController(store, bookingService, app.Redis, notifier)
	messageController := controllers.NewMessageController(store, notifier)
	settingController := controllers.NewSettingController(store)
	paymentController := controllers.NewPaymentController(store, bookingService)
	invoiceController := controllers.NewInvoiceController(store)
	dashboardController := controllers.NewDashboardController(store)

	api := app.Router.Group("/api")
	api.Use(middleware.SessionMiddleware())

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/google", authController.Google)
		auth.GET("/check", middleware.AuthMiddleware(), authController.Check)
		auth.POST("/logout", authController.Logout)
	}

	properties := api.Group("/properties")
	{
		properties.GET("", propertyController.GetProperties)
		properties.GET("/:id", propertyController.GetPropertyDetail)
		properties.GET("/:id/rooms", propertyController.GetPropertyRooms)
		properties.POST("", middleware.AuthMiddleware(constants.RoleAdmin), propertyController.CreateProperty)
		properties.PUT("/:id", middleware.AuthMiddleware(constants.RoleAdmin), propertyController.UpdateProperty)
	}

	rooms := api.Group("/rooms", middleware.AuthMiddleware(constants.RoleAdmin))
	{
		rooms.POST("", roomController.CreateRoom)
		rooms.PUT("/:id", roomController.UpdateRoom)
		rooms.DELETE("/:id", roomController.DeleteRoom)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", middleware.OptionalAuth(), bookingController.CreateBooking)
		bookings.GET("", middleware.AuthMiddleware(constants.RoleAdmin), bookingController.GetBookings)
		bookings.GET("/:id", middleware.AuthMiddleware(constants.RoleAdmin), bookingController.GetBookingDetail)
		bookings.PUT("/:id/status", middleware.AuthMiddleware(constants.RoleAdmin), bookingController.ChangeBookingStatus)
		bookings.POST("/:id/checkin", middleware.AuthMiddleware(constants.RoleAdmin), bookingController.CheckInBooking)
		bookings.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), bookingController.DeleteBooking)
		bookings.GET("/:id/invoice", middleware.AuthMiddleware(), invoiceController.GetInvoice)
	}
	api.GET("/my-bookings", middleware.OptionalAuth(), bookingController.GetMyBookings)

	payments := api.Group("/payments")
	{
		payments.POST("/mpesa/initiate", paymentController.MpesaInitiate)
		payments.POST("/mpesa/callback", paymentController.MpesaCallback)
		payments.POST("/mpesa/test", middleware.AuthMiddleware(constants.RoleAdmin), paymentController.MpesaTest)
		payments.POST("/paypal/initiate", paymentController.PaypalInitiate)
		payments.POST("/paypal/test", middleware.AuthMiddleware(constants.RoleAdmin), paymentController.PaypalTest)
		payments.POST("/stripe/initiate", paymentController.StripeInitiate)
	}

	messages := api.Group("/messages")
	{
		messages.POST("", messageController.CreateMessage)
		messages.GET("", middleware.AuthMiddleware(constants.RoleAdmin), messageController.GetMessages)
		messages.GET("/:id", middleware.AuthMiddleware(constants.RoleAdmin), messageController.GetMessageDetail)
		messages.PUT("/:id/status", middleware.AuthMiddleware(constants.RoleAdmin), messageController.ChangeMessageStatus)
		messages.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), messageController.DeleteMessage)
	}

	settings := api.Group("/settings", middleware.AuthMiddleware(constants.RoleAdmin))
	{
		settings.GET("", settingController.GetSettings)
		settings.POST("", settingController.UpsertSettings)
	}

	api.GET("/dashboard/stats", middleware.AuthMiddleware(constants.RoleAdmin), dashboardController.GetStats)

	api.POST("/upload", middleware.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		uploadImage(c, app)
	})
}

// uploadImage pushes an admin image to cloudinary and returns its URL.
func uploadImage(c *gin.Context, app *config.App) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "file exceeds the 10MB limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		response.BadRequest(c, fmt.Sprintf("unsupported file type %s", ext))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer file.Close()

	result, err := app.Cloudinary.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder: "savanna",
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": result.SecureURL})
}
