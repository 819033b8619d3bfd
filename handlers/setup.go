package handlers

import (
	"fmt"
	"log"
	"time"

	"discord-summarizer/bot"
	"discord-summarizer/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleSetup handles the logic for the /setup command: enable monitoring for
// the current channel, or reactivate it if it was previously disabled.
func HandleSetup(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID := i.GuildID
	chanID := i.ChannelID
	chanName := channelName(s, chanID)
	userID := i.Member.User.ID
	username := memberDisplayName(i)

	// Already active: just report who set it up.
	monitored, err := b.Registry.IsMonitored(guildID, chanID)
	if err != nil {
		log.Printf("Setup: failed to check monitoring state: %v", err)
		respondEphemeral(s, i, "❌ Failed to set up channel monitoring. Please try again.")
		return
	}
	if monitored {
		info, err := b.Registry.GetInfo(guildID, chanID, true)
		if err != nil || info == nil {
			log.Printf("Setup: failed to load channel info: %v", err)
			respondEphemeral(s, i, "✅ This channel is already being monitored.")
			return
		}
		respondEphemeral(s, i, fmt.Sprintf(
			"✅ This channel is already being monitored for message summarization.\nSet up by: %s on %s",
			info.SetupByUsername, time.Unix(info.CreatedAt, 0).UTC().Format(time.RFC1123)))
		return
	}

	// Whether the row existed before only changes the wording of the reply,
	// not the enable semantics.
	wasPreviouslyMonitored, err := b.Registry.Exists(guildID, chanID)
	if err != nil {
		log.Printf("Setup: failed to check channel existence: %v", err)
		wasPreviouslyMonitored = false
	}

	if !b.Registry.Enable(guildID, chanID, chanName, userID, username) {
		respondEphemeral(s, i, "❌ Failed to set up channel monitoring. Please try again.")
		return
	}

	var embed *discordgo.MessageEmbed
	if wasPreviouslyMonitored {
		embed = &discordgo.MessageEmbed{
			Title:       "✅ Channel Monitoring Re-enabled",
			Description: fmt.Sprintf("**#%s** monitoring has been reactivated!", chanName),
			Color:       0x2ecc71,
		}
	} else {
		embed = &discordgo.MessageEmbed{
			Title:       "✅ Channel Setup Complete",
			Description: fmt.Sprintf("I will now monitor **#%s** for messages and store them for summarization.", chanName),
			Color:       0x2ecc71,
		}
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name: "What happens now",
			Value: "• I'll start storing all messages sent in this channel\n" +
				"• Use `/status` to check monitoring status\n" +
				"• Use `/unset` to stop monitoring this channel",
		},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Set up by %s", username)}

	respondEmbed(s, i, embed, false)
	utils.Info("Registry", "Enable", fmt.Sprintf("Monitoring enabled for #%s (%s) by %s", chanName, chanID, username))
}

// HandleUnset handles the logic for the /unset command: soft-delete the
// monitoring row. Stored history is intentionally kept.
func HandleUnset(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID := i.GuildID
	chanID := i.ChannelID
	chanName := channelName(s, chanID)

	if !b.Registry.Disable(guildID, chanID) {
		respondEphemeral(s, i, "❌ This channel is not currently being monitored for message summarization.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "✅ Channel Monitoring Disabled",
		Description: fmt.Sprintf("I will no longer monitor **#%s** for new messages.", chanName),
		Color:       0xe67e22,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Note",
				Value: "Previously stored messages remain in the database. Use `/setup` to re-enable monitoring.",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Disabled by %s", memberDisplayName(i))},
	}

	respondEmbed(s, i, embed, false)
	utils.Info("Registry", "Disable", fmt.Sprintf("Monitoring disabled for #%s (%s)", chanName, chanID))
}

// HandleStatus handles the logic for the /status command.
func HandleStatus(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID := i.GuildID
	chanID := i.ChannelID
	chanName := channelName(s, chanID)

	monitored, err := b.Registry.IsMonitored(guildID, chanID)
	if err != nil {
		log.Printf("Status: failed to check monitoring state: %v", err)
		respondEphemeral(s, i, "❌ Failed to look up channel status. Please try again.")
		return
	}

	if !monitored {
		embed := &discordgo.MessageEmbed{
			Title:       "❌ Channel Status: Inactive",
			Description: fmt.Sprintf("**#%s** is not currently being monitored for message summarization.", chanName),
			Color:       0xe74c3c,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "To enable monitoring",
					Value: "Use the `/setup` command in this channel.",
				},
			},
		}
		respondEmbed(s, i, embed, true)
		return
	}

	info, err := b.Registry.GetInfo(guildID, chanID, true)
	if err != nil || info == nil {
		log.Printf("Status: failed to load channel info: %v", err)
		respondEphemeral(s, i, "❌ Failed to look up channel status. Please try again.")
		return
	}
	count, err := b.Store.Count(guildID, chanID)
	if err != nil {
		log.Printf("Status: failed to count messages: %v", err)
		count = 0
	}

	embed := &discordgo.MessageEmbed{
		Title:       "✅ Channel Status: Active",
		Description: fmt.Sprintf("**#%s** is currently being monitored for message summarization.", chanName),
		Color:       0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Set up by", Value: info.SetupByUsername, Inline: true},
			{Name: "Set up on", Value: time.Unix(info.CreatedAt, 0).UTC().Format(time.RFC1123), Inline: true},
			{Name: "Messages stored", Value: fmt.Sprintf("%d", count), Inline: true},
		},
	}
	respondEmbed(s, i, embed, true)
}
