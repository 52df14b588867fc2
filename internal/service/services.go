package service

import (
	"github.com/messagely/messagely/internal/config"
	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/store"
)

type Services struct {
	AuthService    AuthService
	MessageService MessageService
	UserService    UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		MessageService: NewMessageService(storages.MessageRepository, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
	}
}
