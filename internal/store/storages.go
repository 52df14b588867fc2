package store

import (
	"github.com/messagely/messagely/internal/logger"
)

// Storages bundles all repositories for injection into the service layer.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}
}
