package models

// ChannelInfo represents a monitored channel record.
// At most one row exists per (guild_id, channel_id); disabling is a soft
// delete and re-enabling overwrites the mutable fields in place.
type ChannelInfo struct {
	DBID            int64  `db:"id"`
	GuildID         string `db:"guild_id"`
	ChannelID       string `db:"channel_id"`
	ChannelName     string `db:"channel_name"` // Display label, may go stale
	SetupByUserID   string `db:"setup_by_user_id"`
	SetupByUsername string `db:"setup_by_username"`
	CreatedAt       int64  `db:"created_at"` // Epoch seconds, reset on reactivation
	Active          bool   `db:"active"`
}
