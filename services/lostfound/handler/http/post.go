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

// PostHandler handles HTTP requests for lost & found posts
type PostHandler struct {
	lostFoundUC lostfound.LostFoundUC
}

// NewPostHandler creates a new post handler
func NewPostHandler(lostFoundUC lostfound.LostFoundUC) *PostHandler {
	return &PostHandler{
		lostFoundUC: lostFoundUC,
	}
}

// CreatePost handles item posting requests
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "type and title required")
	}

	token := userToken(c, req.Token)
	if token == "" {
		return utils.UnauthorizedResponse(c, domain.ErrUnauthenticated.Error())
	}

	post, err := h.lostFoundUC.CreatePost(c.Request().Context(), token, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return utils.UnauthorizedResponse(c, err.Error())
		case errors.Is(err, domain.ErrInvalidPostType), errors.Is(err, domain.ErrTitleRequired):
			return utils.BadRequestResponse(c, "type and title required")
		}
		logger.Error("Failed to create post",
			logger.Err(err),
			logger.String("type", req.Type),
		)
		return utils.InternalServerErrorResponse(c, "failed to create post")
	}

	return c.JSON(http.StatusOK, models.PostResponse{OK: true, Post: post})
}

// ListPosts handles public listing requests
func (h *PostHandler) ListPosts(c echo.Context) error {
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

// DeleteAccount handles self-service account deletion requests
func (h *PostHandler) DeleteAccount(c echo.Context) error {
	var req models.DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "token required")
	}

	token := userToken(c, req.Token)
	if token == "" {
		return utils.BadRequestResponse(c, "token required")
	}

	if err := h.lostFoundUC.DeleteAccount(c.Request().Context(), token); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to delete account", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to delete account")
	}

	return c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
