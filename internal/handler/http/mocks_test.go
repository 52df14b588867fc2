package http

import (
	"context"

	"github.com/messagely/messagely/internal/service"
	"github.com/messagely/messagely/models"
)

// mockAuthService is a hand-written function-field mock of
// service.AuthService. Tests set only the functions they need.
type mockAuthService struct {
	RegisterUserFunc func(ctx context.Context, user models.User, password string) (models.User, error)
	LoginFunc        func(ctx context.Context, username, password string) (models.User, error)
	TouchLoginFunc   func(ctx context.Context, username string) error
	CreateTokenFunc  func(ctx context.Context, username string) (models.Token, error)
	ParseTokenFunc   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.RegisterUserFunc(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.LoginFunc(ctx, username, password)
}

func (m *mockAuthService) TouchLogin(ctx context.Context, username string) error {
	return m.TouchLoginFunc(ctx, username)
}

func (m *mockAuthService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	return m.CreateTokenFunc(ctx, username)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.ParseTokenFunc(ctx, tokenString)
}

// mockMessageService is a hand-written function-field mock of
// service.MessageService.
type mockMessageService struct {
	SendFunc     func(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error)
	GetFunc      func(ctx context.Context, id int64, actor string) (models.MessageDetail, error)
	MarkReadFunc func(ctx context.Context, id int64, actor string) (models.ReadReceipt, error)
	ListToFunc   func(ctx context.Context, username string) ([]models.MessageWithSender, error)
	ListFromFunc func(ctx context.Context, username string) ([]models.MessageWithRecipient, error)
}

func (m *mockMessageService) Send(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error) {
	return m.SendFunc(ctx, fromUsername, toUsername, body)
}

func (m *mockMessageService) Get(ctx context.Context, id int64, actor string) (models.MessageDetail, error) {
	return m.GetFunc(ctx, id, actor)
}

func (m *mockMessageService) MarkRead(ctx context.Context, id int64, actor string) (models.ReadReceipt, error) {
	return m.MarkReadFunc(ctx, id, actor)
}

func (m *mockMessageService) ListTo(ctx context.Context, username string) ([]models.MessageWithSender, error) {
	return m.ListToFunc(ctx, username)
}

func (m *mockMessageService) ListFrom(ctx context.Context, username string) ([]models.MessageWithRecipient, error) {
	return m.ListFromFunc(ctx, username)
}

// mockUserService is a hand-written function-field mock of
// service.UserService.
type mockUserService struct {
	ListFunc func(ctx context.Context) ([]models.UserProfile, error)
	GetFunc  func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserService) List(ctx context.Context) ([]models.UserProfile, error) {
	return m.ListFunc(ctx)
}

func (m *mockUserService) Get(ctx context.Context, username string) (models.User, error) {
	return m.GetFunc(ctx, username)
}

// passthroughParseToken returns a ParseToken implementation that accepts any
// token string and answers with the given identity.
func passthroughParseToken(identity string) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{Username: identity}, nil
	}
}

func newMockServices(auth *mockAuthService, message *mockMessageService, user *mockUserService) *service.Services {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if message == nil {
		message = &mockMessageService{}
	}
	if user == nil {
		user = &mockUserService{}
	}

	return &service.Services{
		AuthService:    auth,
		MessageService: message,
		UserService:    user,
	}
}
