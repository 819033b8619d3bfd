package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"discord-summarizer/bot"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// HandleSummarize handles the logic for the /summarize command. It fetches
// the time-windowed slice of stored messages and hands it to the
// summarization client, replying with the summary as an embed.
func HandleSummarize(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID := i.GuildID
	chanID := i.ChannelID
	chanName := channelName(s, chanID)

	monitored, err := b.Registry.IsMonitored(guildID, chanID)
	if err != nil {
		log.Printf("Summarize: failed to check monitoring state: %v", err)
		respondEphemeral(s, i, "❌ Something went wrong. Please try again.")
		return
	}
	if !monitored {
		embed := &discordgo.MessageEmbed{
			Title: "❌ Channel Not Monitored",
			Description: fmt.Sprintf(
				"I'm not monitoring **#%s** yet, so I can't summarize it.\n\nUse `/setup` first to start monitoring this channel!",
				chanName),
			Color: 0xe74c3c,
		}
		respondEmbed(s, i, embed, true)
		return
	}

	hours := 1
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "hours" {
			hours = int(opt.IntValue())
		}
	}

	// Defer the response; the summarization call can take a while.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		log.Printf("Summarize: failed to defer response: %v", err)
		return
	}

	messages, err := b.Store.InWindow(guildID, chanID, hours, viper.GetInt("summarizer.message_limit"))
	if err != nil {
		log.Printf("Summarize: failed to load messages: %v", err)
		followupError(s, i, "Could not load the stored messages for this channel.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	summary, err := b.Summarizer.Summarize(ctx, messages, chanName, hours)
	if err != nil {
		log.Printf("Summarize: generation failed: %v", err)
		followupError(s, i, "Something went wrong while generating your summary. Please try again.")
		return
	}

	plural := ""
	if hours > 1 {
		plural = "s"
	}
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Channel Summary - Last %d Hour%s", hours, plural),
		Description: summary,
		Color:       0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Stats",
				Value: fmt.Sprintf("**Messages analyzed:** %d\n**Channel:** #%s\n**Timeframe:** %d hour%s",
					len(messages), chanName, hours, plural),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Summary requested by %s", memberDisplayName(i)),
		},
	}

	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}); err != nil {
		log.Printf("Summarize: failed to send followup: %v", err)
	}
}

// followupError sends an error embed as a followup to a deferred interaction.
func followupError(s *discordgo.Session, i *discordgo.InteractionCreate, details string) {
	embed := &discordgo.MessageEmbed{
		Title:       "❌ Summary Failed",
		Description: details,
		Color:       0xe74c3c,
	}
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.Printf("Failed to send error followup: %v", err)
	}
}
