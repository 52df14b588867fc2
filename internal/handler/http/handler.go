package http

import (
	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/service"
	"github.com/messagely/messagely/internal/utils"
)

type Handler struct {
	services *service.Services

	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}
