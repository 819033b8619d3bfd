package bot

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"discord-summarizer/config"
	"discord-summarizer/database"
	"discord-summarizer/server"
	"discord-summarizer/summarizer"
	"discord-summarizer/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// Bot encapsulates the bot's state and its collaborators: the Discord
// session, the persistence layer and the summarization client.
type Bot struct {
	Session    *discordgo.Session
	DB         *sql.DB
	Registry   *database.ChannelRegistry
	Store      *database.MessageStore
	Summarizer summarizer.Client
}

// NewBot creates and initializes a new Bot instance. Configuration is loaded
// once here; the storage location and summarizer settings are not re-read
// anywhere else.
func NewBot() (*Bot, error) {
	config.LoadConfig()

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Message content is required to capture what was actually said.
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	db, err := database.InitDB(viper.GetString("database.path"))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sumClient := summarizer.NewOpenAIClient(
		viper.GetString("SUMMARIZER_API_KEY"),
		viper.GetString("summarizer.base_url"),
		viper.GetString("summarizer.model"),
	)

	return &Bot{
		Session:    dg,
		DB:         db,
		Registry:   database.NewChannelRegistry(db),
		Store:      database.NewMessageStore(db),
		Summarizer: sumClient,
	}, nil
}

// Start opens the bot's session, registers handlers and slash commands, and
// starts the optional digest scheduler and status server.
func (b *Bot) Start(registerHandlers func(*Bot), commands []*discordgo.ApplicationCommand) error {
	registerHandlers(b)

	err := b.Session.Open()
	if err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session)

	// Register slash commands globally.
	for _, cmd := range commands {
		_, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", cmd)
		if err != nil {
			log.Printf("Cannot create '%v' command: %v", cmd.Name, err)
		}
	}

	startScheduler(b)

	if viper.GetBool("server.enabled") {
		srv := server.New(viper.GetString("server.port"), b.Registry, b.Store)
		go func() {
			if err := srv.Start(); err != nil {
				log.Printf("Status server stopped: %v", err)
			}
		}()
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session and the database.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	if b.DB != nil {
		b.DB.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot), commands []*discordgo.ApplicationCommand) {
	bot, err := NewBot()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers, commands); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}
