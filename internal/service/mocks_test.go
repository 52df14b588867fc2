package service

import (
	"context"

	"github.com/messagely/messagely/models"
)

// mockUserRepository is a hand-written function-field mock of
// store.UserRepository. Tests set only the functions they need; calling an
// unset function panics, which surfaces unexpected repository access.
type mockUserRepository struct {
	CreateUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
	TouchLastLoginFunc     func(ctx context.Context, username string) error
	ListUsersFunc          func(ctx context.Context) ([]models.UserProfile, error)
	GetUserFunc            func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.FindUserByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) TouchLastLogin(ctx context.Context, username string) error {
	return m.TouchLastLoginFunc(ctx, username)
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return m.ListUsersFunc(ctx)
}

func (m *mockUserRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	return m.GetUserFunc(ctx, username)
}

// mockMessageRepository is a hand-written function-field mock of
// store.MessageRepository.
type mockMessageRepository struct {
	CreateMessageFunc    func(ctx context.Context, message models.Message) (models.Message, error)
	GetMessageFunc       func(ctx context.Context, id int64) (models.MessageDetail, error)
	MarkMessageReadFunc  func(ctx context.Context, id int64) (models.ReadReceipt, error)
	ListMessagesToFunc   func(ctx context.Context, username string) ([]models.MessageWithSender, error)
	ListMessagesFromFunc func(ctx context.Context, username string) ([]models.MessageWithRecipient, error)
}

func (m *mockMessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return m.CreateMessageFunc(ctx, message)
}

func (m *mockMessageRepository) GetMessage(ctx context.Context, id int64) (models.MessageDetail, error) {
	return m.GetMessageFunc(ctx, id)
}

func (m *mockMessageRepository) MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	return m.MarkMessageReadFunc(ctx, id)
}

func (m *mockMessageRepository) ListMessagesTo(ctx context.Context, username string) ([]models.MessageWithSender, error) {
	return m.ListMessagesToFunc(ctx, username)
}

func (m *mockMessageRepository) ListMessagesFrom(ctx context.Context, username string) ([]models.MessageWithRecipient, error) {
	return m.ListMessagesFromFunc(ctx, username)
}
