package service

import (
	"context"

	"github.com/messagely/messagely/models"
)

// AuthService owns the credential and token lifecycle: registration with
// one-way password hashing, credential verification, last-login bookkeeping,
// and stateless JWT issue/verify.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	TouchLogin(ctx context.Context, username string) error
	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MessageService owns the message lifecycle and its resource-relative access
// rules: the detail view requires the actor to be a participant, mark-read
// requires the actor to be the recipient.
type MessageService interface {
	Send(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error)
	Get(ctx context.Context, id int64, actor string) (models.MessageDetail, error)
	MarkRead(ctx context.Context, id int64, actor string) (models.ReadReceipt, error)
	ListTo(ctx context.Context, username string) ([]models.MessageWithSender, error)
	ListFrom(ctx context.Context, username string) ([]models.MessageWithRecipient, error)
}

// UserService is a thin read projection over the user repository. Access
// policy (authentication vs ownership) is layered by the transport
// middleware, not here.
type UserService interface {
	List(ctx context.Context) ([]models.UserProfile, error)
	Get(ctx context.Context, username string) (models.User, error)
}
