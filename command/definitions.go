package command

import "github.com/bwmarrin/discordgo"

// SetupCommand defines the structure for the /setup command.
type SetupCommand struct{}

// Definition returns the application command definition.
func (c *SetupCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "setup",
		Description: "Set up message monitoring for this channel",
	}
}

// UnsetCommand defines the structure for the /unset command.
type UnsetCommand struct{}

// Definition returns the application command definition.
func (c *UnsetCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "unset",
		Description: "Stop monitoring this channel",
	}
}

// StatusCommand defines the structure for the /status command.
type StatusCommand struct{}

// Definition returns the application command definition.
func (c *StatusCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "status",
		Description: "Check the monitoring status of this channel",
	}
}

// SummarizeCommand defines the structure for the /summarize command.
type SummarizeCommand struct{}

// Definition returns the application command definition.
func (c *SummarizeCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "summarize",
		Description: "Get a fun summary of recent channel messages",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "hours",
				Description: "How many hours back to summarize (1-5)",
				Type:        discordgo.ApplicationCommandOptionInteger,
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "1 hour ago", Value: 1},
					{Name: "2 hours ago", Value: 2},
					{Name: "3 hours ago", Value: 3},
					{Name: "4 hours ago", Value: 4},
					{Name: "5 hours ago", Value: 5},
				},
			},
		},
	}
}

// PingCommand defines the structure for the /ping command.
type PingCommand struct{}

// Definition returns the application command definition.
func (c *PingCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Responds with Pong!",
	}
}
