package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

var c *cron.Cron

// startScheduler starts the digest cron job when enabled. Each run posts a
// summary of the trailing digest window into every monitored channel.
func startScheduler(b *Bot) {
	if !viper.GetBool("digest.enabled") {
		log.Println("Digest scheduler disabled.")
		return
	}

	schedule := viper.GetString("digest.schedule")
	c = cron.New()
	_, err := c.AddFunc(schedule, func() {
		runDigest(b)
	})
	if err != nil {
		log.Fatalf("Could not set up digest cron job: %v", err)
	}
	c.Start()
	log.Printf("Digest scheduled with cron expression %q.", schedule)
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}

// runDigest summarizes every active channel over the configured window and
// posts the result into the channel itself.
func runDigest(b *Bot) {
	hours := viper.GetInt("digest.hours")
	limit := viper.GetInt("summarizer.message_limit")

	channels, err := b.Registry.ListActive()
	if err != nil {
		log.Printf("Digest: failed to list active channels: %v", err)
		return
	}

	for _, ch := range channels {
		messages, err := b.Store.InWindow(ch.GuildID, ch.ChannelID, hours, limit)
		if err != nil {
			log.Printf("Digest: failed to load messages for channel %s: %v", ch.ChannelID, err)
			continue
		}
		if len(messages) == 0 {
			continue // nothing to digest
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		summary, err := b.Summarizer.Summarize(ctx, messages, ch.ChannelName, hours)
		cancel()
		if err != nil {
			log.Printf("Digest: failed to summarize channel %s: %v", ch.ChannelID, err)
			continue
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Scheduled Digest - Last %d Hour(s)", hours),
			Description: summary,
			Color:       0x3498db,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("%d messages analyzed", len(messages)),
			},
		}
		if _, err := b.Session.ChannelMessageSendEmbed(ch.ChannelID, embed); err != nil {
			log.Printf("Digest: failed to post digest to channel %s: %v", ch.ChannelID, err)
		}
	}
}
