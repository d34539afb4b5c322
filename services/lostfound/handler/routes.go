package handler

import (
	"time"

	redis "github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/adipras/campusfound/internal/pkg/middleware"
	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/services/lostfound"
	"github.com/adipras/campusfound/services/lostfound/handler/http"
)

// Handler coordinates the HTTP handlers for the lost & found service
type Handler struct {
	authHandler  *http.AuthHandler
	postHandler  *http.PostHandler
	adminHandler *http.AdminHandler
	lostFoundUC  lostfound.LostFoundUC
	redisClient  *redis.Client
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	postHandler *http.PostHandler,
	adminHandler *http.AdminHandler,
	lostFoundUC lostfound.LostFoundUC,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:  authHandler,
		postHandler:  postHandler,
		adminHandler: adminHandler,
		lostFoundUC:  lostFoundUC,
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	otpLimiter := middleware.IPRateLimiter(
		"otp",
		h.cfg.RateLimit.OTPLimit,
		time.Duration(h.cfg.RateLimit.OTPWindowMinutes)*time.Minute,
		"Too many OTP requests, please try again later",
		h.redisClient,
	)
	postLimiter := middleware.IPRateLimiter(
		"post",
		h.cfg.RateLimit.PostLimit,
		time.Duration(h.cfg.RateLimit.PostWindowMinutes)*time.Minute,
		"Too many posts, please try again later",
		h.redisClient,
	)

	// Public routes
	api.POST("/send-otp", h.authHandler.SendOTP, otpLimiter)
	api.POST("/verify-otp", h.authHandler.VerifyOTP)
	api.GET("/posts", h.postHandler.ListPosts)

	// Token-gated routes (the handlers resolve the token themselves)
	api.POST("/post-item", h.postHandler.CreatePost, postLimiter)
	api.POST("/delete-account", h.postHandler.DeleteAccount)

	// Admin routes
	admin := api.Group("/admin")
	admin.POST("/login", h.adminHandler.Login)

	adminAuth := http.AdminAuthMiddleware(h.lostFoundUC)
	admin.GET("/users", h.adminHandler.ListUsers, adminAuth)
	admin.GET("/posts", h.adminHandler.ListPosts, adminAuth)
	admin.POST("/block-user", h.adminHandler.BlockUser, adminAuth)
}
