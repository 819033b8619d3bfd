package handlers

import (
	"github.com/bwmarrin/discordgo"
)

// respondEphemeral sends a plain ephemeral reply to an interaction.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// respondEmbed sends an embed reply to an interaction.
func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// channelName resolves the display name of the interaction's channel,
// preferring the session state cache over a REST call.
func channelName(s *discordgo.Session, channelID string) string {
	if ch, err := s.State.Channel(channelID); err == nil && ch.Name != "" {
		return ch.Name
	}
	if ch, err := s.Channel(channelID); err == nil {
		return ch.Name
	}
	return channelID
}

// memberDisplayName returns the invoking member's display name.
func memberDisplayName(i *discordgo.InteractionCreate) string {
	if i.Member == nil {
		return ""
	}
	if i.Member.Nick != "" {
		return i.Member.Nick
	}
	if i.Member.User.GlobalName != "" {
		return i.Member.User.GlobalName
	}
	return i.Member.User.Username
}

// authorDisplayName returns the display name of a message author at capture
// time.
func authorDisplayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
