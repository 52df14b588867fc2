package service

import (
	"context"
	"testing"
	"time"

	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/store"
	"github.com/messagely/messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailBetween(id int64, from, to string) models.MessageDetail {
	return models.MessageDetail{
		ID:     id,
		Body:   "hello",
		SentAt: time.Now(),
		FromUser: models.UserProfile{
			Username: from,
		},
		ToUser: models.UserProfile{
			Username: to,
		},
	}
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestMessageService_Send_Success(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		CreateMessageFunc: func(_ context.Context, message models.Message) (models.Message, error) {
			assert.Equal(t, "alice", message.FromUsername)
			assert.Equal(t, "bob", message.ToUsername)
			message.ID = 1
			message.SentAt = time.Now()
			return message, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	created, err := svc.Send(ctx, "alice", "bob", "hello")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.ReadAt)
}

func TestMessageService_Send_EmptyFields(t *testing.T) {
	ctx := context.Background()
	svc := NewMessageService(&mockMessageRepository{}, logger.Nop())

	_, err := svc.Send(ctx, "", "bob", "hello")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Send(ctx, "alice", "", "hello")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Send(ctx, "alice", "bob", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		CreateMessageFunc: func(_ context.Context, _ models.Message) (models.Message, error) {
			return models.Message{}, store.ErrRecipientNotFound
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	_, err := svc.Send(ctx, "alice", "ghost", "hello")
	assert.ErrorIs(t, err, store.ErrRecipientNotFound)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestMessageService_Get_Participants(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		GetMessageFunc: func(_ context.Context, id int64) (models.MessageDetail, error) {
			return detailBetween(id, "alice", "bob"), nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	// both the sender and the recipient may read the detail view
	for _, actor := range []string{"alice", "bob"} {
		detail, err := svc.Get(ctx, 7, actor)
		require.NoError(t, err, "actor %s", actor)
		assert.Equal(t, int64(7), detail.ID)
	}
}

func TestMessageService_Get_Outsider(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		GetMessageFunc: func(_ context.Context, id int64) (models.MessageDetail, error) {
			return detailBetween(id, "alice", "bob"), nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	_, err := svc.Get(ctx, 7, "mallory")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMessageService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		GetMessageFunc: func(_ context.Context, _ int64) (models.MessageDetail, error) {
			return models.MessageDetail{}, store.ErrMessageNotFound
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	_, err := svc.Get(ctx, 404, "alice")
	assert.ErrorIs(t, err, store.ErrMessageNotFound)
}

// ── MarkRead ─────────────────────────────────────────────────────────────────

func TestMessageService_MarkRead_Recipient(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	var marked int64
	repo := &mockMessageRepository{
		GetMessageFunc: func(_ context.Context, id int64) (models.MessageDetail, error) {
			return detailBetween(id, "alice", "bob"), nil
		},
		MarkMessageReadFunc: func(_ context.Context, id int64) (models.ReadReceipt, error) {
			marked = id
			return models.ReadReceipt{ID: id, ReadAt: &now}, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	receipt, err := svc.MarkRead(ctx, 7, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(7), marked)
	assert.Equal(t, int64(7), receipt.ID)
	require.NotNil(t, receipt.ReadAt)
	assert.True(t, receipt.ReadAt.Equal(now))
}

func TestMessageService_MarkRead_SenderForbidden(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		GetMessageFunc: func(_ context.Context, id int64) (models.MessageDetail, error) {
			return detailBetween(id, "alice", "bob"), nil
		},
		MarkMessageReadFunc: func(_ context.Context, _ int64) (models.ReadReceipt, error) {
			t.Fatal("MarkMessageRead must not be called for a non-recipient")
			return models.ReadReceipt{}, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	_, err := svc.MarkRead(ctx, 7, "alice")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMessageService_MarkRead_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		GetMessageFunc: func(_ context.Context, _ int64) (models.MessageDetail, error) {
			return models.MessageDetail{}, store.ErrMessageNotFound
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	_, err := svc.MarkRead(ctx, 404, "bob")
	assert.ErrorIs(t, err, store.ErrMessageNotFound)
}

// ── ListTo / ListFrom ────────────────────────────────────────────────────────

func TestMessageService_ListTo(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		ListMessagesToFunc: func(_ context.Context, username string) ([]models.MessageWithSender, error) {
			assert.Equal(t, "bob", username)
			return []models.MessageWithSender{
				{ID: 1, Body: "hi", FromUser: models.UserProfile{Username: "alice"}},
			}, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	messages, err := svc.ListTo(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "alice", messages[0].FromUser.Username)
}

func TestMessageService_ListFrom_Empty(t *testing.T) {
	ctx := context.Background()

	repo := &mockMessageRepository{
		ListMessagesFromFunc: func(_ context.Context, _ string) ([]models.MessageWithRecipient, error) {
			return []models.MessageWithRecipient{}, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	messages, err := svc.ListFrom(ctx, "bob")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
