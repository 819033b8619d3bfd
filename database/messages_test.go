package database

import (
	"fmt"
	"testing"
	"time"

	"discord-summarizer/models"
)

// testMessage builds a message with a timestamp the given duration in the
// past.
func testMessage(id string, age time.Duration) models.StoredMessage {
	return models.StoredMessage{
		GuildID:    "1",
		ChannelID:  "10",
		MessageID:  id,
		AuthorID:   "100",
		AuthorName: "alice",
		Content:    "message " + id,
		Timestamp:  time.Now().Add(-age).UTC().UnixMicro(),
	}
}

func mustStore(t *testing.T, s *MessageStore, msg models.StoredMessage) {
	t.Helper()
	inserted, err := s.Store(msg)
	if err != nil {
		t.Fatalf("Store(%s) failed: %v", msg.MessageID, err)
	}
	if !inserted {
		t.Fatalf("Store(%s) reported duplicate for a fresh message", msg.MessageID)
	}
}

func TestStoreDeduplicatesByMessageID(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	first := testMessage("999", time.Minute)
	mustStore(t, s, first)

	// Same message ID, different content: must be a no-op, not an error.
	second := first
	second.Content = "rewritten content"
	inserted, err := s.Store(second)
	if err != nil {
		t.Fatalf("duplicate Store failed: %v", err)
	}
	if inserted {
		t.Fatalf("duplicate Store reported a new row")
	}

	msgs, err := s.Recent("1", "10", 10, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(msgs))
	}
	if msgs[0].Content != first.Content {
		t.Fatalf("duplicate overwrote content: %q", msgs[0].Content)
	}
}

func TestStoreKeepsNullableFields(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	msg := testMessage("1", time.Minute)
	msg.Content = ""
	msg.ReplyTo = "42" // not required to reference a stored message
	msg.HasAttachments = true
	mustStore(t, s, msg)

	msgs, err := s.Recent("1", "10", 10, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Content != "" || msgs[0].ReplyTo != "42" || !msgs[0].HasAttachments {
		t.Fatalf("round-tripped message mismatch: %+v", msgs[0])
	}
	if msgs[0].CreatedAt == 0 {
		t.Fatalf("created_at not recorded")
	}
}

func TestCountSurvivesDisableEnableCycle(t *testing.T) {
	db := newTestDB(t)
	r := NewChannelRegistry(db)
	s := NewMessageStore(db)

	r.Enable("1", "10", "general", "5", "alice")
	for i := 0; i < 3; i++ {
		mustStore(t, s, testMessage(fmt.Sprintf("m%d", i), time.Duration(i)*time.Minute))
	}

	before, err := s.Count("1", "10")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if before != 3 {
		t.Fatalf("expected 3 messages, got %d", before)
	}

	r.Disable("1", "10")
	r.Enable("1", "10", "general", "5", "alice")

	after, err := s.Count("1", "10")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if after != before {
		t.Fatalf("disable/enable cycle changed count: %d != %d", after, before)
	}
}

func TestRecentPaginationTilesFullHistory(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	const total = 7
	for i := 0; i < total; i++ {
		mustStore(t, s, testMessage(fmt.Sprintf("m%d", i), time.Duration(total-i)*time.Minute))
	}

	full, err := s.Recent("1", "10", total+10, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(full) != total {
		t.Fatalf("expected %d messages, got %d", total, len(full))
	}
	// Newest first.
	for i := 1; i < len(full); i++ {
		if full[i-1].Timestamp < full[i].Timestamp {
			t.Fatalf("Recent not ordered newest-first at index %d", i)
		}
	}

	// Pages of 3 reproduce the full listing with no gaps or duplicates.
	var paged []models.StoredMessage
	for offset := 0; offset < total; offset += 3 {
		page, err := s.Recent("1", "10", 3, offset)
		if err != nil {
			t.Fatalf("Recent(limit=3, offset=%d) failed: %v", offset, err)
		}
		paged = append(paged, page...)
	}
	if len(paged) != total {
		t.Fatalf("pagination returned %d messages, want %d", len(paged), total)
	}
	for i := range full {
		if paged[i].MessageID != full[i].MessageID {
			t.Fatalf("pagination order mismatch at %d: %s != %s", i, paged[i].MessageID, full[i].MessageID)
		}
	}
}

func TestInWindowReturnsOldestFirstSubset(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	mustStore(t, s, testMessage("old", 3*time.Hour))
	mustStore(t, s, testMessage("mid", 90*time.Minute))
	mustStore(t, s, testMessage("new", 30*time.Minute))

	windowed, err := s.InWindow("1", "10", 2, 100)
	if err != nil {
		t.Fatalf("InWindow failed: %v", err)
	}
	if len(windowed) != 2 {
		t.Fatalf("expected 2 messages in a 2h window, got %d", len(windowed))
	}
	if windowed[0].MessageID != "mid" || windowed[1].MessageID != "new" {
		t.Fatalf("window not oldest-first: %s, %s", windowed[0].MessageID, windowed[1].MessageID)
	}

	// The windowed view is a consistent permutation of the recency view over
	// the same underlying set.
	recent, err := s.Recent("1", "10", 100, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 messages total, got %d", len(recent))
	}
	if recent[0].MessageID != windowed[1].MessageID || recent[1].MessageID != windowed[0].MessageID {
		t.Fatalf("windowed and recent views disagree")
	}
}

func TestInWindowHonorsLimit(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	for i := 0; i < 5; i++ {
		mustStore(t, s, testMessage(fmt.Sprintf("m%d", i), time.Duration(5-i)*time.Minute))
	}

	windowed, err := s.InWindow("1", "10", 1, 3)
	if err != nil {
		t.Fatalf("InWindow failed: %v", err)
	}
	if len(windowed) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(windowed))
	}
	// Capped from the oldest end of the window onward, still ascending.
	if windowed[0].MessageID != "m0" {
		t.Fatalf("unexpected first message in capped window: %s", windowed[0].MessageID)
	}
}

func TestInWindowScopedToChannel(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	mustStore(t, s, testMessage("a", time.Minute))
	other := testMessage("b", time.Minute)
	other.ChannelID = "11"
	mustStore(t, s, other)

	windowed, err := s.InWindow("1", "10", 1, 100)
	if err != nil {
		t.Fatalf("InWindow failed: %v", err)
	}
	if len(windowed) != 1 || windowed[0].MessageID != "a" {
		t.Fatalf("window leaked across channels: %+v", windowed)
	}
}

func TestStats(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	old := testMessage("old", 3*time.Hour)
	old.AuthorID = "200"
	old.AuthorName = "bob"
	mustStore(t, s, old)
	mustStore(t, s, testMessage("mid", 90*time.Minute))
	mustStore(t, s, testMessage("new", 30*time.Minute))

	stats, err := s.Stats("1", "10", 0)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalMessages != 3 {
		t.Fatalf("expected 3 total messages, got %d", stats.TotalMessages)
	}
	if stats.UniqueAuthors != 2 {
		t.Fatalf("expected 2 unique authors, got %d", stats.UniqueAuthors)
	}
	if stats.OldestTimestamp != old.Timestamp {
		t.Fatalf("unexpected oldest timestamp: %d", stats.OldestTimestamp)
	}
	if stats.NewestTimestamp <= stats.OldestTimestamp {
		t.Fatalf("newest timestamp not after oldest")
	}

	// Windowed stats cover the same window as InWindow.
	windowed, err := s.Stats("1", "10", 2)
	if err != nil {
		t.Fatalf("windowed Stats failed: %v", err)
	}
	if windowed.TotalMessages != 2 {
		t.Fatalf("expected 2 messages in 2h window, got %d", windowed.TotalMessages)
	}
	if windowed.UniqueAuthors != 1 {
		t.Fatalf("expected 1 unique author in window, got %d", windowed.UniqueAuthors)
	}
}

func TestStatsEmptyChannel(t *testing.T) {
	s := NewMessageStore(newTestDB(t))

	stats, err := s.Stats("1", "10", 0)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalMessages != 0 || stats.UniqueAuthors != 0 ||
		stats.OldestTimestamp != 0 || stats.NewestTimestamp != 0 {
		t.Fatalf("expected zero stats for empty channel, got %+v", stats)
	}
}
