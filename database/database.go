package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
)

// InitDB initializes the database connection. It takes the database path as
// input, creates the file if it doesn't exist and ensures the schema is in
// place.
func InitDB(dbPath string) (*sql.DB, error) {
	// Ensure the directory for the database file exists.
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open the SQLite database. It will be created if it doesn't exist.
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Ping the database to verify the connection.
	if err = db.Ping(); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Println("Successfully connected to the database at", dbPath)
	return db, nil
}

// createTables creates the monitored_channels and stored_messages tables if
// they don't exist, along with the indexes the query paths rely on.
func createTables(db *sql.DB) error {
	channelsQuery := `
    CREATE TABLE IF NOT EXISTS monitored_channels (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        guild_id TEXT NOT NULL,
        channel_id TEXT NOT NULL,
        channel_name TEXT NOT NULL,
        setup_by_user_id TEXT NOT NULL,
        setup_by_username TEXT NOT NULL,
        created_at INTEGER NOT NULL,
        active INTEGER NOT NULL DEFAULT 1,
        UNIQUE(guild_id, channel_id)
    );`

	if _, err := db.Exec(channelsQuery); err != nil {
		return fmt.Errorf("failed to create monitored_channels table: %w", err)
	}

	messagesQuery := `
    CREATE TABLE IF NOT EXISTS stored_messages (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        guild_id TEXT NOT NULL,
        channel_id TEXT NOT NULL,
        message_id TEXT NOT NULL UNIQUE,
        author_id TEXT NOT NULL,
        author_name TEXT NOT NULL,
        content TEXT,
        timestamp INTEGER NOT NULL,
        has_attachments INTEGER NOT NULL DEFAULT 0,
        reply_to TEXT,
        created_at INTEGER NOT NULL
    );`

	if _, err := db.Exec(messagesQuery); err != nil {
		return fmt.Errorf("failed to create stored_messages table: %w", err)
	}

	// Create indexes for better query performance. The windowed retrieval
	// path must be a single indexed range scan over
	// (guild_id, channel_id, timestamp).
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_monitored_guild_channel ON monitored_channels(guild_id, channel_id);",
		"CREATE INDEX IF NOT EXISTS idx_messages_guild_channel ON stored_messages(guild_id, channel_id);",
		"CREATE INDEX IF NOT EXISTS idx_messages_channel_timestamp ON stored_messages(guild_id, channel_id, timestamp);",
		"CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON stored_messages(timestamp);",
	}

	for _, indexQuery := range indexes {
		if _, err := db.Exec(indexQuery); err != nil {
			log.Printf("Warning: failed to create index: %v", err)
		}
	}

	return nil
}
