package handlers

import (
	"log"

	"discord-summarizer/bot"
	"discord-summarizer/models"

	"github.com/bwmarrin/discordgo"
)

// MessageCreate returns the ingestion handler. It is called for every message
// the bot can see; messages in monitored channels are persisted for later
// summarization. The monitoring check happens here, before the store is
// touched — the store itself is policy-free.
func MessageCreate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Ignore bot messages, including our own.
		if m.Author == nil || m.Author.Bot {
			return
		}
		// Direct messages have no guild and are never monitored.
		if m.GuildID == "" {
			return
		}

		monitored, err := b.Registry.IsMonitored(m.GuildID, m.ChannelID)
		if err != nil {
			log.Printf("Ingestion: failed to check monitoring state for channel %s: %v", m.ChannelID, err)
			return
		}
		if !monitored {
			return
		}

		replyTo := ""
		if m.MessageReference != nil {
			replyTo = m.MessageReference.MessageID
		}

		inserted, err := b.Store.Store(models.StoredMessage{
			GuildID:        m.GuildID,
			ChannelID:      m.ChannelID,
			MessageID:      m.ID,
			AuthorID:       m.Author.ID,
			AuthorName:     authorDisplayName(m),
			Content:        m.Content,
			Timestamp:      m.Timestamp.UTC().UnixMicro(),
			HasAttachments: len(m.Attachments) > 0,
			ReplyTo:        replyTo,
		})
		if err != nil {
			log.Printf("Ingestion: failed to store message %s: %v", m.ID, err)
			return
		}
		if !inserted {
			// Duplicate delivery, e.g. a gateway replay after reconnect.
			log.Printf("Ingestion: message %s already stored, skipping", m.ID)
		}
	}
}
