package handler

import (
	"maps"
	"net/http"

	"user-directory-service/internal/usecase/user"
	pkgerrors "user-directory-service/pkg/errors"
	"user-directory-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// Index handles GET /
func (h *UserHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Success:   true,
		Message:   MsgWelcome,
		Endpoints: maps.Clone(Endpoints),
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	success(c, MsgUsersRetrieved, resp.Users)
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	idStr := c.Param("id")
	id := user.ParseUserID(idStr)

	logger.WithContext(c.Request.Context(), h.log).Debug("GetUser request",
		zap.String("raw_id", idStr),
		zap.Stringer("id", id),
	)

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.handleError(c, err)
		return
	}

	success(c, MsgUserRetrieved, resp.User)
}

// GetUserByRegistrationNumber handles GET /api/users/registration/:regNumber
func (h *UserHandler) GetUserByRegistrationNumber(c *gin.Context) {
	regNumber := c.Param("regNumber")

	logger.WithContext(c.Request.Context(), h.log).Debug("GetUserByRegistrationNumber request",
		zap.String("registration_number", regNumber),
	)

	resp, err := h.uc.GetUserByRegistrationNumber(c.Request.Context(), user.GetUserByRegistrationRequest{
		RegistrationNumber: regNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	success(c, MsgUserRetrieved, resp.User)
}

// handleError answers errors that carry a client status directly and hands
// everything else to the error boundary middleware.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	if status := pkgerrors.StatusCode(err); status < http.StatusInternalServerError {
		failure(c, status, err.Error())
		return
	}

	logger.WithContext(c.Request.Context(), h.log).Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	_ = c.Error(err)
}
