package di

import (
	"fmt"

	ginhandler "user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/adapter/repository/memory"
	"user-directory-service/internal/config"
	domain "user-directory-service/internal/domain/user"
	"user-directory-service/internal/usecase/user"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Store      *memory.UserStore
	UserUC     user.Usecase
	GinHandler *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	records, err := domain.Dataset(cfg.App.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	store, err := memory.NewUserStore(records, l.With(zap.String("dataset", cfg.App.Dataset)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user store: %w", err)
	}

	userUC := user.New(store, l)

	return &Container{
		Config:     cfg,
		Logger:     l,
		Store:      store,
		UserUC:     userUC,
		GinHandler: ginhandler.NewUserHandler(userUC, l),
	}, nil
}
