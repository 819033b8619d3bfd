package utils

import (
	"discord-summarizer/models"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// Auth provides methods for authorization checks.
type Auth struct {
	config models.CommandsConfig
}

// NewAuth creates a new Auth instance with the loaded configuration.
func NewAuth() (*Auth, error) {
	var commandsConfig models.CommandsConfig
	if err := viper.UnmarshalKey("commands", &commandsConfig); err != nil {
		return nil, err
	}
	return &Auth{config: commandsConfig}, nil
}

// IsDeveloper checks if a user is listed as a developer in the config.
func (a *Auth) IsDeveloper(userID string) bool {
	for _, devID := range a.config.Auth.Developers {
		if userID == devID {
			return true
		}
	}
	return false
}

// CanManageChannels checks whether the invoking member may configure
// monitoring. Permission checks are delegated to Discord: the member needs
// the Manage Channels permission in the channel, with a config-listed
// developer override on top.
func (a *Auth) CanManageChannels(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	if a.IsDeveloper(i.Member.User.ID) {
		return true
	}
	return i.Member.Permissions&discordgo.PermissionManageChannels != 0
}
