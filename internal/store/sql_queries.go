package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password, first_name, last_name, phone)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING username, password, first_name, last_name, phone, join_at, last_login_at;`

	findUserByUsername = `SELECT username, password, first_name, last_name, phone, join_at, last_login_at
    FROM users
    WHERE username = $1;`

	touchLastLogin = `UPDATE users
    SET last_login_at = now()
    WHERE username = $1;`

	listUsers = `SELECT username, first_name, last_name, phone
    FROM users;`

	createMessage = `INSERT INTO messages (from_username, to_username, body)
    VALUES ($1, $2, $3)
    RETURNING id, from_username, to_username, body, sent_at, read_at;`

	markMessageRead = `UPDATE messages
    SET read_at = now()
    WHERE id = $1 AND read_at IS NULL;`

	getReadReceipt = `SELECT id, read_at
    FROM messages
    WHERE id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetMessageQuery builds the detail query for a single message with both
// participants joined in: sender profile columns first, recipient second.
func buildGetMessageQuery(id int64) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"f.username", "f.first_name", "f.last_name", "f.phone",
			"t.username", "t.first_name", "t.last_name", "t.phone",
		).
		From("messages m").
		Join("users f ON m.from_username = f.username").
		Join("users t ON m.to_username = t.username").
		Where(sq.Eq{"m.id": id}).
		ToSql()
}

// buildListMessagesToQuery builds the inbox query: all messages addressed to
// username with the sender resolved into a public profile.
func buildListMessagesToQuery(username string) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"u.username", "u.first_name", "u.last_name", "u.phone",
		).
		From("messages m").
		Join("users u ON m.from_username = u.username").
		Where(sq.Eq{"m.to_username": username}).
		OrderBy("m.id").
		ToSql()
}

// buildListMessagesFromQuery builds the outbox query: all messages sent by
// username with the recipient resolved into a public profile.
func buildListMessagesFromQuery(username string) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"u.username", "u.first_name", "u.last_name", "u.phone",
		).
		From("messages m").
		Join("users u ON m.to_username = u.username").
		Where(sq.Eq{"m.from_username": username}).
		OrderBy("m.id").
		ToSql()
}
