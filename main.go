package main

import (
	"discord-summarizer/bot"
	"discord-summarizer/command"
	"discord-summarizer/handlers"
)

func main() {
	bot.Run(handlers.Register, command.GetCommandDefinitions())
}
