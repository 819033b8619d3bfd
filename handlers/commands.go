package handlers

import (
	"log"

	"discord-summarizer/bot"
	"discord-summarizer/utils"

	"github.com/bwmarrin/discordgo"
)

// CommandDispatcher is the central handler for all application command
// interactions. It performs permission checks and then dispatches the
// interaction to the appropriate handler.
func CommandDispatcher(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	auth, err := utils.NewAuth()
	if err != nil {
		log.Printf("Failed to create auth instance: %v", err)
		return
	}

	// Commands that reconfigure monitoring need the Manage Channels
	// permission; the rest are open to everyone.
	needsManage := map[string]bool{
		"setup": true,
		"unset": true,
	}

	commandName := i.ApplicationCommandData().Name
	if needsManage[commandName] && !auth.CanManageChannels(i) {
		respondEphemeral(s, i, "❌ You need the 'Manage Channels' permission to use this command.")
		return
	}

	switch commandName {
	case "setup":
		HandleSetup(b, s, i)
	case "unset":
		HandleUnset(b, s, i)
	case "status":
		HandleStatus(b, s, i)
	case "summarize":
		HandleSummarize(b, s, i)
	case "ping":
		HandlePing(s, i)
	default:
		respondEphemeral(s, i, "🚫 Unknown command.")
	}
}

// HandlePing handles the logic for the /ping command.
func HandlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Pong!",
		},
	})
}
