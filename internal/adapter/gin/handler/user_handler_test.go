package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "user-directory-service/internal/domain/user"
	usecase "user-directory-service/internal/usecase/user"
	pkgerrors "user-directory-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) (*usecase.ListUsersResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ListUsersResponse), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, req usecase.GetUserRequest) (*usecase.GetUserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.GetUserResponse), args.Error(1)
}

func (m *MockUserUsecase) GetUserByRegistrationNumber(ctx context.Context, req usecase.GetUserByRegistrationRequest) (*usecase.GetUserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.GetUserResponse), args.Error(1)
}

// envelope mirrors Envelope with a concrete data payload for decoding
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

var john = domain.User{
	ID:                 1,
	Name:               "John Doe",
	About:              "Software Developer with 5 years of experience",
	Image:              "/images/john.jpg",
	RegistrationNumber: "REG001",
}

func setupTest(t *testing.T) (*gin.Engine, *UserHandler, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	handler := NewUserHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	return r, handler, mockUsecase
}

func TestIndex(t *testing.T) {
	r, handler, _ := setupTest(t)
	r.GET("/", handler.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IndexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, MsgWelcome, resp.Message)
	assert.Equal(t, Endpoints, resp.Endpoints)
}

func TestListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users", handler.ListUsers)

		users := []domain.User{john, {ID: 2, Name: "Jane Smith", RegistrationNumber: "REG002"}}
		mockUsecase.On("ListUsers", mock.Anything).Return(&usecase.ListUsersResponse{Users: users}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp envelope[[]domain.User]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, MsgUsersRetrieved, resp.Message)
		require.NotNil(t, resp.Data)
		assert.Equal(t, users, *resp.Data)
	})

	t.Run("Usecase Error Is Left For Boundary", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		var captured []error
		r.GET("/api/users", func(c *gin.Context) {
			handler.ListUsers(c)
			for _, e := range c.Errors {
				captured = append(captured, e.Err)
			}
		})

		mockUsecase.On("ListUsers", mock.Anything).Return(nil, errors.New("store unavailable"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		require.Len(t, captured, 1)
		assert.EqualError(t, captured[0], "store unavailable")
	})
}

type goneError struct{}

func (goneError) Error() string   { return "User removed" }
func (goneError) HTTPStatus() int { return http.StatusGone }

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users/:id", handler.GetUser)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: usecase.ValidUserID(1)}).
			Return(&usecase.GetUserResponse{User: john}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp envelope[domain.User]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, MsgUserRetrieved, resp.Message)
		require.NotNil(t, resp.Data)
		assert.Equal(t, john, *resp.Data)
	})

	t.Run("Invalid ID Reaches Usecase As Invalid", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users/:id", handler.GetUser)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: usecase.InvalidUserID()}).
			Return(nil, pkgerrors.NewNotFoundError("user", usecase.MsgUserNotFound))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/abc", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"User not found"}`, w.Body.String())
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users/:id", handler.GetUser)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: usecase.ValidUserID(999999)}).
			Return(nil, pkgerrors.NewNotFoundError("user", usecase.MsgUserNotFound))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/999999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"User not found"}`, w.Body.String())
	})
}

func TestGetUser_StatusFromError(t *testing.T) {
	r, handler, mockUsecase := setupTest(t)
	var captured int
	r.GET("/api/users/:id", func(c *gin.Context) {
		handler.GetUser(c)
		captured = len(c.Errors)
	})

	mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: usecase.ValidUserID(7)}).
		Return(nil, fmt.Errorf("lookup: %w", goneError{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/7", nil))

	assert.Equal(t, http.StatusGone, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"lookup: User removed"}`, w.Body.String())
	assert.Zero(t, captured)
}

func TestGetUserByRegistrationNumber(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users/registration/:regNumber", handler.GetUserByRegistrationNumber)

		mockUsecase.On("GetUserByRegistrationNumber", mock.Anything, usecase.GetUserByRegistrationRequest{RegistrationNumber: "REG001"}).
			Return(&usecase.GetUserResponse{User: john}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/registration/REG001", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp envelope[domain.User]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data)
		assert.Equal(t, "REG001", resp.Data.RegistrationNumber)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users/registration/:regNumber", handler.GetUserByRegistrationNumber)

		mockUsecase.On("GetUserByRegistrationNumber", mock.Anything, usecase.GetUserByRegistrationRequest{RegistrationNumber: "does-not-exist"}).
			Return(nil, pkgerrors.NewNotFoundError("user", usecase.MsgUserNotFoundRegistration))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/registration/does-not-exist", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"User not found with this registration number"}`, w.Body.String())
	})
}

func TestRouteNotFound(t *testing.T) {
	r, _, _ := setupTest(t)
	r.NoRoute(RouteNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, w.Body.String())
}
