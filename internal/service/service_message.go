package service

import (
	"context"
	"fmt"

	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/store"
	"github.com/messagely/messagely/models"
)

// messageService is the concrete implementation of MessageService.
//
// Ownership of a message is resource-relative: the guards here compare the
// acting identity (always the verified token subject, supplied by the
// transport layer) against the participants of the fetched message, not
// against URL parameters.
type messageService struct {
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewMessageService constructs a MessageService wired to the given
// MessageRepository.
func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// Send persists a new message from fromUsername to toUsername.
//
// fromUsername must come from the verified token claim, never from a
// client-supplied body field. An unknown recipient fails the INSERT's
// foreign-key constraint and surfaces as store.ErrRecipientNotFound.
//
// The returned record carries the raw identity strings, not resolved
// profiles.
func (s *messageService) Send(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if fromUsername == "" || toUsername == "" || body == "" {
		log.Error().Str("from", fromUsername).Str("to", toUsername).Msg("invalid message data provided")
		return models.Message{}, ErrInvalidDataProvided
	}

	created, err := s.messageRepository.CreateMessage(ctx, models.Message{
		FromUsername: fromUsername,
		ToUsername:   toUsername,
		Body:         body,
	})
	if err != nil {
		log.Err(err).Str("from", fromUsername).Str("to", toUsername).Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns the detail view of a message with both participants resolved.
//
// The actor must be one of the two participants; anyone else gets
// ErrForbidden. The guard runs after the fetch, so a missing message yields
// store.ErrMessageNotFound regardless of the actor.
func (s *messageService) Get(ctx context.Context, id int64, actor string) (models.MessageDetail, error) {
	log := logger.FromContext(ctx)

	message, err := s.messageRepository.GetMessage(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("message fetch ended with error")
		return models.MessageDetail{}, fmt.Errorf("message fetch ended with error: %w", err)
	}

	if !message.IsParticipant(actor) {
		log.Error().Int64("id", id).Str("actor", actor).Msg("actor is not a participant of the message")
		return models.MessageDetail{}, ErrForbidden
	}

	return message, nil
}

// MarkRead transitions a message to read.
//
// Only the recipient may perform the transition; the sender or any third
// party gets ErrForbidden and the message stays untouched. The transition is
// one-way: a repeated call returns the original read_at unchanged.
func (s *messageService) MarkRead(ctx context.Context, id int64, actor string) (models.ReadReceipt, error) {
	log := logger.FromContext(ctx)

	message, err := s.messageRepository.GetMessage(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("message fetch ended with error")
		return models.ReadReceipt{}, fmt.Errorf("message fetch ended with error: %w", err)
	}

	if message.ToUser.Username != actor {
		log.Error().Int64("id", id).Str("actor", actor).Str("recipient", message.ToUser.Username).
			Msg("actor is not the recipient of the message")
		return models.ReadReceipt{}, ErrForbidden
	}

	receipt, err := s.messageRepository.MarkMessageRead(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("marking message read ended with error")
		return models.ReadReceipt{}, fmt.Errorf("marking message read ended with error: %w", err)
	}

	return receipt, nil
}

// ListTo returns all messages addressed to username with senders resolved.
// No messages is an empty slice, not an error.
func (s *messageService) ListTo(ctx context.Context, username string) ([]models.MessageWithSender, error) {
	log := logger.FromContext(ctx)

	messages, err := s.messageRepository.ListMessagesTo(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("inbox listing ended with error")
		return nil, fmt.Errorf("inbox listing ended with error: %w", err)
	}

	return messages, nil
}

// ListFrom returns all messages sent by username with recipients resolved.
// No messages is an empty slice, not an error.
func (s *messageService) ListFrom(ctx context.Context, username string) ([]models.MessageWithRecipient, error) {
	log := logger.FromContext(ctx)

	messages, err := s.messageRepository.ListMessagesFrom(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("outbox listing ended with error")
		return nil, fmt.Errorf("outbox listing ended with error: %w", err)
	}

	return messages, nil
}
