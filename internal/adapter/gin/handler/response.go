package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform JSON wrapper for API responses.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// IndexResponse is returned by the root route.
type IndexResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse is returned when a request fails unexpectedly.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Response messages.
const (
	MsgWelcome             = "Welcome to Simple Express API"
	MsgUsersRetrieved      = "Users retrieved successfully"
	MsgUserRetrieved       = "User retrieved successfully"
	MsgRouteNotFound       = "Route not found"
	MsgInternalServerError = "Internal server error"
)

// Endpoints describes the documented API routes served at "/".
var Endpoints = map[string]string{
	"Get all users":            "GET /api/users",
	"Get user by ID":           "GET /api/users/:id",
	"Get user by registration": "GET /api/users/registration/:regNumber",
}

func success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func failure(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// InternalError writes the 500 envelope carrying err's text.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: MsgInternalServerError,
		Error:   err.Error(),
	})
}

// RouteNotFound answers requests that matched no route.
func RouteNotFound(c *gin.Context) {
	failure(c, http.StatusNotFound, MsgRouteNotFound)
}
