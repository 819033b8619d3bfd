package database

import (
	"database/sql"
	"fmt"
	"time"

	"discord-summarizer/models"
)

// MessageStore durably records chat messages and answers recency and
// time-window queries. It performs no monitoring checks itself; gating
// ingestion on the ChannelRegistry is the caller's job.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore creates a message store backed by the given database.
func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

const messageColumns = "id, guild_id, channel_id, message_id, author_id, author_name, content, timestamp, has_attachments, reply_to, created_at"

// Store inserts a message, ignoring duplicates keyed on message_id. It
// reports whether a new row was actually inserted; false with a nil error
// means the message was already stored, which is a normal outcome under
// at-least-once delivery.
func (s *MessageStore) Store(msg models.StoredMessage) (bool, error) {
	query := `
    INSERT OR IGNORE INTO stored_messages
    (guild_id, channel_id, message_id, author_id, author_name, content, timestamp, has_attachments, reply_to, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := s.db.Prepare(query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	var replyTo interface{}
	if msg.ReplyTo != "" {
		replyTo = msg.ReplyTo
	}

	res, err := stmt.Exec(
		msg.GuildID, msg.ChannelID, msg.MessageID, msg.AuthorID, msg.AuthorName,
		msg.Content, msg.Timestamp, msg.HasAttachments, replyTo, time.Now().Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert message %s: %w", msg.MessageID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for message %s: %w", msg.MessageID, err)
	}
	return affected > 0, nil
}

// Count returns the total number of stored messages for the pair, including
// messages captured while monitoring was later disabled.
func (s *MessageStore) Count(guildID, channelID string) (int64, error) {
	var count int64
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM stored_messages WHERE guild_id = ? AND channel_id = ?",
		guildID, channelID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages for channel %s: %w", channelID, err)
	}
	return count, nil
}

// Recent returns stored messages for the pair, most recent first, paginated
// by limit and offset.
func (s *MessageStore) Recent(guildID, channelID string, limit, offset int) ([]models.StoredMessage, error) {
	query := fmt.Sprintf(`
    SELECT %s FROM stored_messages
    WHERE guild_id = ? AND channel_id = ?
    ORDER BY timestamp DESC
    LIMIT ? OFFSET ?`, messageColumns)

	rows, err := s.db.Query(query, guildID, channelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// InWindow returns messages with timestamp at or after now minus the given
// number of hours, oldest first, capped at limit. The cutoff is computed once
// and compared numerically so the query stays a single indexed range scan.
func (s *MessageStore) InWindow(guildID, channelID string, hours, limit int) ([]models.StoredMessage, error) {
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour).UTC().UnixMicro()

	query := fmt.Sprintf(`
    SELECT %s FROM stored_messages
    WHERE guild_id = ? AND channel_id = ? AND timestamp >= ?
    ORDER BY timestamp ASC
    LIMIT ?`, messageColumns)

	rows, err := s.db.Query(query, guildID, channelID, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages in window: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// Stats returns aggregate statistics for the pair. With hours > 0 the
// aggregate covers the same trailing window as InWindow; otherwise it covers
// all history.
func (s *MessageStore) Stats(guildID, channelID string, hours int) (*models.MessageStats, error) {
	query := `
    SELECT COUNT(*), COUNT(DISTINCT author_id),
           COALESCE(MIN(timestamp), 0), COALESCE(MAX(timestamp), 0)
    FROM stored_messages
    WHERE guild_id = ? AND channel_id = ?`
	args := []interface{}{guildID, channelID}

	if hours > 0 {
		query += " AND timestamp >= ?"
		args = append(args, time.Now().Add(-time.Duration(hours)*time.Hour).UTC().UnixMicro())
	}

	var stats models.MessageStats
	err := s.db.QueryRow(query, args...).Scan(
		&stats.TotalMessages, &stats.UniqueAuthors,
		&stats.OldestTimestamp, &stats.NewestTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query message stats: %w", err)
	}
	return &stats, nil
}

// scanMessages reads StoredMessage rows, mapping the nullable content and
// reply_to columns onto plain strings.
func scanMessages(rows *sql.Rows) ([]models.StoredMessage, error) {
	var messages []models.StoredMessage
	for rows.Next() {
		var msg models.StoredMessage
		var content, replyTo sql.NullString
		if err := rows.Scan(
			&msg.DBID, &msg.GuildID, &msg.ChannelID, &msg.MessageID,
			&msg.AuthorID, &msg.AuthorName, &content, &msg.Timestamp,
			&msg.HasAttachments, &replyTo, &msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msg.Content = content.String
		msg.ReplyTo = replyTo.String
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
