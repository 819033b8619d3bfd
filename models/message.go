package models

// StoredMessage represents a single captured Discord message.
type StoredMessage struct {
	DBID           int64  `db:"id"`
	GuildID        string `db:"guild_id"`
	ChannelID      string `db:"channel_id"`
	MessageID      string `db:"message_id"` // Unique across all channels, used for deduplication
	AuthorID       string `db:"author_id"`
	AuthorName     string `db:"author_name"` // Display name at capture time, never updated
	Content        string `db:"content"`
	Timestamp      int64  `db:"timestamp"` // UTC epoch microseconds
	HasAttachments bool   `db:"has_attachments"`
	ReplyTo        string `db:"reply_to"`   // Message ID this replies to, empty if none
	CreatedAt      int64  `db:"created_at"` // Insertion time, epoch seconds
}

// MessageStats represents aggregate statistics over a channel's stored messages.
type MessageStats struct {
	TotalMessages   int64 `json:"total_messages"`
	UniqueAuthors   int64 `json:"unique_authors"`
	OldestTimestamp int64 `json:"oldest_timestamp"` // epoch microseconds, 0 when empty
	NewestTimestamp int64 `json:"newest_timestamp"` // epoch microseconds, 0 when empty
}
