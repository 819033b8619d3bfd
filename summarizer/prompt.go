package summarizer

import (
	"fmt"
	"strings"
	"time"

	"discord-summarizer/models"
)

// FormatMessages renders stored messages into a readable transcript for the
// language model. Messages are expected oldest-first, as returned by the
// store's window query.
func FormatMessages(messages []models.StoredMessage, channelName string, hours int) string {
	if len(messages) == 0 {
		return fmt.Sprintf("No messages found in #%s from the last %d hour(s).", channelName, hours)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Discord Channel: #%s\n", channelName)
	fmt.Fprintf(&b, "Messages from the last %d hour(s) (%d total messages):\n\n", hours, len(messages))

	for _, msg := range messages {
		readableTime := time.UnixMicro(msg.Timestamp).UTC().Format("15:04:05")

		content := msg.Content
		if content == "" {
			content = "[No text content]"
		}
		if msg.HasAttachments {
			content += " [Has attachments]"
		}
		if msg.ReplyTo != "" {
			content = "[Reply] " + content
		}

		fmt.Fprintf(&b, "[%s] %s: %s\n", readableTime, msg.AuthorName, content)
	}

	return b.String()
}

// BuildPrompt wraps the transcript in the summarization instructions.
func BuildPrompt(transcript, channelName string, hours int) string {
	return fmt.Sprintf(`Hey bestie! Can you help me summarize what went down in the #%s Discord channel over the last %d hour(s)?

Here are all the messages:

%s

Please give me a fun, casual summary that sounds like you're gossiping with friends! Include:
- The main topics/conversations that happened
- Any drama, funny moments, or interesting discussions
- Who was the most active/chatty
- Overall vibe of the chat
- Any important announcements or decisions

Make it sound natural and entertaining - like you're telling your bestie what they missed while they were away! Use emojis and keep it light and fun. Don't be too formal or robotic - we're all friends here!

If there were barely any messages or just boring stuff, be honest about it but still make it entertaining!
`, channelName, hours, transcript)
}
