package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"discord-summarizer/models"
)

// ChannelRegistry tracks which (guild, channel) pairs are opted into
// monitoring. Removal is a soft delete; the row persists so that re-enabling
// keeps the channel's message history reachable.
type ChannelRegistry struct {
	db *sql.DB
}

// NewChannelRegistry creates a registry backed by the given database.
func NewChannelRegistry(db *sql.DB) *ChannelRegistry {
	return &ChannelRegistry{db: db}
}

// IsMonitored reports whether an active monitoring row exists for the pair.
func (r *ChannelRegistry) IsMonitored(guildID, channelID string) (bool, error) {
	var id int64
	err := r.db.QueryRow(
		"SELECT id FROM monitored_channels WHERE guild_id = ? AND channel_id = ? AND active = 1",
		guildID, channelID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query monitored channel: %w", err)
	}
	return true, nil
}

// Exists reports whether any row, active or not, exists for the pair. Callers
// use it to distinguish "never configured" from "previously disabled".
func (r *ChannelRegistry) Exists(guildID, channelID string) (bool, error) {
	var id int64
	err := r.db.QueryRow(
		"SELECT id FROM monitored_channels WHERE guild_id = ? AND channel_id = ?",
		guildID, channelID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query channel existence: %w", err)
	}
	return true, nil
}

// Enable adds a channel to monitoring or reactivates an existing row. On
// reactivation the name and setup_by fields are overwritten and created_at is
// reset, so the row always reflects who enabled monitoring last. Returns
// false only on storage failure.
func (r *ChannelRegistry) Enable(guildID, channelID, channelName, userID, username string) bool {
	query := `
    INSERT INTO monitored_channels (guild_id, channel_id, channel_name, setup_by_user_id, setup_by_username, created_at, active)
    VALUES (?, ?, ?, ?, ?, ?, 1)
    ON CONFLICT(guild_id, channel_id) DO UPDATE SET
        channel_name = excluded.channel_name,
        setup_by_user_id = excluded.setup_by_user_id,
        setup_by_username = excluded.setup_by_username,
        created_at = excluded.created_at,
        active = 1;`

	stmt, err := r.db.Prepare(query)
	if err != nil {
		log.Printf("Failed to prepare enable statement for channel %s: %v", channelID, err)
		return false
	}
	defer stmt.Close()

	if _, err := stmt.Exec(guildID, channelID, channelName, userID, username, time.Now().Unix()); err != nil {
		log.Printf("Failed to enable monitoring for channel %s: %v", channelID, err)
		return false
	}
	return true
}

// Disable stops monitoring a channel by setting active = 0. Returns false
// when no active row was affected, which is how callers detect "not currently
// monitored". Stored messages are left untouched.
func (r *ChannelRegistry) Disable(guildID, channelID string) bool {
	stmt, err := r.db.Prepare(
		"UPDATE monitored_channels SET active = 0 WHERE guild_id = ? AND channel_id = ? AND active = 1")
	if err != nil {
		log.Printf("Failed to prepare disable statement for channel %s: %v", channelID, err)
		return false
	}
	defer stmt.Close()

	res, err := stmt.Exec(guildID, channelID)
	if err != nil {
		log.Printf("Failed to disable monitoring for channel %s: %v", channelID, err)
		return false
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Printf("Failed to read affected rows for channel %s: %v", channelID, err)
		return false
	}
	return affected > 0
}

// GetInfo returns the monitoring row for the pair, or nil when absent. With
// activeOnly set, disabled rows are treated as absent.
func (r *ChannelRegistry) GetInfo(guildID, channelID string, activeOnly bool) (*models.ChannelInfo, error) {
	query := `
    SELECT id, guild_id, channel_id, channel_name, setup_by_user_id, setup_by_username, created_at, active
    FROM monitored_channels WHERE guild_id = ? AND channel_id = ?`
	if activeOnly {
		query += " AND active = 1"
	}

	var info models.ChannelInfo
	err := r.db.QueryRow(query, guildID, channelID).Scan(
		&info.DBID, &info.GuildID, &info.ChannelID, &info.ChannelName,
		&info.SetupByUserID, &info.SetupByUsername, &info.CreatedAt, &info.Active,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query channel info: %w", err)
	}
	return &info, nil
}

// ListActive returns every channel currently opted into monitoring.
func (r *ChannelRegistry) ListActive() ([]models.ChannelInfo, error) {
	rows, err := r.db.Query(`
    SELECT id, guild_id, channel_id, channel_name, setup_by_user_id, setup_by_username, created_at, active
    FROM monitored_channels WHERE active = 1 ORDER BY guild_id, channel_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active channels: %w", err)
	}
	defer rows.Close()

	var channels []models.ChannelInfo
	for rows.Next() {
		var info models.ChannelInfo
		if err := rows.Scan(
			&info.DBID, &info.GuildID, &info.ChannelID, &info.ChannelName,
			&info.SetupByUserID, &info.SetupByUsername, &info.CreatedAt, &info.Active,
		); err != nil {
			return nil, fmt.Errorf("failed to scan channel row: %w", err)
		}
		channels = append(channels, info)
	}
	return channels, rows.Err()
}
