package database

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestEnableDisableLifecycle(t *testing.T) {
	r := NewChannelRegistry(newTestDB(t))

	monitored, err := r.IsMonitored("1", "10")
	if err != nil {
		t.Fatalf("IsMonitored failed: %v", err)
	}
	if monitored {
		t.Fatalf("channel monitored before enable")
	}

	if !r.Enable("1", "10", "general", "5", "alice") {
		t.Fatalf("enable failed")
	}

	monitored, err = r.IsMonitored("1", "10")
	if err != nil {
		t.Fatalf("IsMonitored failed: %v", err)
	}
	if !monitored {
		t.Fatalf("channel not monitored after enable")
	}

	info, err := r.GetInfo("1", "10", true)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if info == nil {
		t.Fatalf("no channel info after enable")
	}
	if info.ChannelName != "general" || info.SetupByUsername != "alice" || info.SetupByUserID != "5" {
		t.Fatalf("unexpected channel info: %+v", info)
	}
	if !info.Active {
		t.Fatalf("channel info not active")
	}

	if !r.Disable("1", "10") {
		t.Fatalf("disable reported no row affected")
	}
	monitored, err = r.IsMonitored("1", "10")
	if err != nil {
		t.Fatalf("IsMonitored failed: %v", err)
	}
	if monitored {
		t.Fatalf("channel still monitored after disable")
	}

	// Disabling twice is a no-op the caller can detect.
	if r.Disable("1", "10") {
		t.Fatalf("second disable reported success")
	}

	// The row survives the soft delete.
	exists, err := r.Exists("1", "10")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("row gone after disable")
	}
	info, err = r.GetInfo("1", "10", true)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if info != nil {
		t.Fatalf("active-only lookup returned a disabled row")
	}
}

func TestDisableWithoutEnable(t *testing.T) {
	r := NewChannelRegistry(newTestDB(t))

	if r.Disable("1", "10") {
		t.Fatalf("disable succeeded for a channel that was never enabled")
	}
	exists, err := r.Exists("1", "10")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Fatalf("disable created a row")
	}
}

func TestReactivationOverwritesAuditFields(t *testing.T) {
	r := NewChannelRegistry(newTestDB(t))

	if !r.Enable("1", "10", "general", "5", "alice") {
		t.Fatalf("first enable failed")
	}
	if !r.Disable("1", "10") {
		t.Fatalf("disable failed")
	}
	if !r.Enable("1", "10", "general-renamed", "7", "bob") {
		t.Fatalf("reactivation failed")
	}

	info, err := r.GetInfo("1", "10", true)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if info == nil {
		t.Fatalf("no channel info after reactivation")
	}
	if info.ChannelName != "general-renamed" || info.SetupByUsername != "bob" || info.SetupByUserID != "7" {
		t.Fatalf("reactivation did not overwrite audit fields: %+v", info)
	}

	// Still exactly one row per pair.
	channels, err := r.ListActive()
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(channels) != 1 {
		t.Fatalf("expected 1 active channel, got %d", len(channels))
	}
}

func TestListActiveSkipsDisabled(t *testing.T) {
	r := NewChannelRegistry(newTestDB(t))

	r.Enable("1", "10", "general", "5", "alice")
	r.Enable("1", "11", "random", "5", "alice")
	r.Enable("2", "20", "lobby", "9", "carol")
	r.Disable("1", "11")

	channels, err := r.ListActive()
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("expected 2 active channels, got %d", len(channels))
	}
	for _, ch := range channels {
		if ch.ChannelID == "11" {
			t.Fatalf("disabled channel returned by ListActive")
		}
	}
}
