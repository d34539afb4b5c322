package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adipras/campusfound/internal/pkg/logger"
	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/internal/utils"
	"github.com/adipras/campusfound/services/lostfound"
	"github.com/adipras/campusfound/services/lostfound/domain"
)

// AdminHandler handles HTTP requests for the moderation surface
type AdminHandler struct {
	lostFoundUC lostfound.LostFoundUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(lostFoundUC lostfound.LostFoundUC) *AdminHandler {
	return &AdminHandler{
		lostFoundUC: lostFoundUC,
	}
}

// Login handles admin login requests
func (h *AdminHandler) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "password required")
	}
	if req.Password == "" {
		return utils.BadRequestResponse(c, "password required")
	}

	token, err := h.lostFoundUC.AdminLogin(c.Request().Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Admin login failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to log in")
	}

	return c.JSON(http.StatusOK, models.AdminLoginResponse{OK: true, Token: token})
}

// ListUsers handles admin user directory requests
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.lostFoundUC.ListUsers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list users", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list users")
	}
	if users == nil {
		users = []*models.User{}
	}
	return c.JSON(http.StatusOK, models.UsersResponse{OK: true, Users: users})
}

// ListPosts handles admin listing requests. Same data as the public feed,
// behind the admin gate for parity with the rest of the moderation surface.
func (h *AdminHandler) ListPosts(c echo.Context) error {
	posts, err := h.lostFoundUC.ListPosts(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list posts", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list posts")
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return c.JSON(http.StatusOK, models.PostsResponse{OK: true, Posts: posts})
}

// BlockUser handles admin block requests
func (h *AdminHandler) BlockUser(c echo.Context) error {
	var req models.BlockUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "phone required")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "phone required")
	}

	if err := h.lostFoundUC.BlockUser(c.Request().Context(), req.Phone); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to block user",
			logger.Err(err),
			logger.String("phone", req.Phone),
		)
		return utils.InternalServerErrorResponse(c, "failed to block user")
	}

	return c.JSON(http.StatusOK, models.OKResponse{OK: true})
}

// AdminAuthMiddleware rejects requests whose admin token does not match a
// live session. The token comes from the x-admin-token header or the
// adminToken field of the body.
func AdminAuthMiddleware(lostFoundUC lostfound.LostFoundUC) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("x-admin-token")
			if token == "" {
				var body struct {
					AdminToken string `json:"adminToken"`
				}
				if err := bindAndRestore(c, &body); err == nil {
					token = body.AdminToken
				}
			}
			if !lostFoundUC.AuthenticateAdmin(c.Request().Context(), token) {
				return utils.UnauthorizedResponse(c, "admin auth required")
			}
			return next(c)
		}
	}
}
