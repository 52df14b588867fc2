package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/models"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. It executes all message operations directly against
// the "messages" table, joining the "users" table where a participant needs
// to be resolved into a public profile.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a new message. The database assigns id and sent_at;
// read_at starts NULL.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on to_username →
//     [ErrRecipientNotFound]. The constraint is the recipient-existence
//     guard; no separate lookup precedes the INSERT.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMessage, message.FromUsername, message.ToUsername, message.Body)

	var created models.Message
	if err := row.Scan(&created.ID, &created.FromUsername, &created.ToUsername, &created.Body, &created.SentAt, &created.ReadAt); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").
			Str("from", message.FromUsername).
			Str("to", message.ToUsername).
			Msg("error creating message")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Message{}, ErrRecipientNotFound
		case "":
			return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetMessage returns a single message with both participants resolved into
// public profiles.
//
// Error handling:
//   - No matching row → [ErrMessageNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *messageRepository) GetMessage(ctx context.Context, id int64) (models.MessageDetail, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMessageQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.GetMessage").Int64("id", id).Msg("failed to build query")
		return models.MessageDetail{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var m models.MessageDetail
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
		&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone,
		&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MessageDetail{}, ErrMessageNotFound
		}

		log.Err(err).Str("func", "*messageRepository.GetMessage").Int64("id", id).Msg("error scanning message detail")
		return models.MessageDetail{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return m, nil
}

// MarkMessageRead stamps read_at on an unread message and returns the
// resulting receipt.
//
// The UPDATE is guarded with "read_at IS NULL" so the transition happens at
// most once; re-reading an already-read message is a no-op that returns the
// original timestamp. The receipt is re-read after the update so the caller
// always sees the persisted value.
func (r *messageRepository) MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, markMessageRead, id); err != nil {
		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Int64("id", id).Msg("error stamping read_at")
		return models.ReadReceipt{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var receipt models.ReadReceipt
	row := r.db.QueryRowContext(ctx, getReadReceipt, id)
	if err := row.Scan(&receipt.ID, &receipt.ReadAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReadReceipt{}, ErrMessageNotFound
		}

		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Int64("id", id).Msg("error scanning read receipt")
		return models.ReadReceipt{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return receipt, nil
}

// ListMessagesTo returns all messages addressed to username with the sender
// resolved. A user with no inbound messages gets an empty slice.
func (r *messageRepository) ListMessagesTo(ctx context.Context, username string) ([]models.MessageWithSender, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesToQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessagesTo").Str("username", username).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessagesTo").Str("username", username).Msg("error executing inbox query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.MessageWithSender, 0)
	for rows.Next() {
		var m models.MessageWithSender
		if err := rows.Scan(
			&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
			&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone,
		); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessagesTo").Str("username", username).Msg("error scanning inbox row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// ListMessagesFrom returns all messages sent by username with the recipient
// resolved. A user with no outbound messages gets an empty slice.
func (r *messageRepository) ListMessagesFrom(ctx context.Context, username string) ([]models.MessageWithRecipient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesFromQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessagesFrom").Str("username", username).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessagesFrom").Str("username", username).Msg("error executing outbox query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.MessageWithRecipient, 0)
	for rows.Next() {
		var m models.MessageWithRecipient
		if err := rows.Scan(
			&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
			&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone,
		); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessagesFrom").Str("username", username).Msg("error scanning outbox row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
