package summarizer

import (
	"strings"
	"testing"
	"time"

	"discord-summarizer/models"
)

func TestFormatMessagesEmpty(t *testing.T) {
	out := FormatMessages(nil, "general", 2)
	if out != "No messages found in #general from the last 2 hour(s)." {
		t.Fatalf("unexpected empty-window text: %q", out)
	}
}

func TestFormatMessagesTranscript(t *testing.T) {
	ts := time.Date(2025, 8, 17, 0, 9, 56, 0, time.UTC).UnixMicro()
	messages := []models.StoredMessage{
		{AuthorName: "alice", Content: "hello there", Timestamp: ts},
		{AuthorName: "bob", Content: "", HasAttachments: true, Timestamp: ts},
		{AuthorName: "carol", Content: "replying", ReplyTo: "123", Timestamp: ts},
	}

	out := FormatMessages(messages, "general", 1)

	if !strings.HasPrefix(out, "Discord Channel: #general\n") {
		t.Fatalf("missing channel header: %q", out)
	}
	if !strings.Contains(out, "(3 total messages)") {
		t.Fatalf("missing message count: %q", out)
	}
	if !strings.Contains(out, "[00:09:56] alice: hello there") {
		t.Fatalf("missing plain message line: %q", out)
	}
	if !strings.Contains(out, "bob: [No text content] [Has attachments]") {
		t.Fatalf("missing attachment/no-content markers: %q", out)
	}
	if !strings.Contains(out, "carol: [Reply] replying") {
		t.Fatalf("missing reply marker: %q", out)
	}
}

func TestBuildPromptIncludesTranscript(t *testing.T) {
	prompt := BuildPrompt("THE TRANSCRIPT", "general", 3)
	if !strings.Contains(prompt, "THE TRANSCRIPT") {
		t.Fatalf("prompt does not embed the transcript")
	}
	if !strings.Contains(prompt, "#general") {
		t.Fatalf("prompt does not name the channel")
	}
	if !strings.Contains(prompt, "last 3 hour(s)") {
		t.Fatalf("prompt does not state the window")
	}
}
