package handlers

import (
	"Setlist/playlist"

	"github.com/bwmarrin/discordgo"
)

var manager *playlist.PlaylistManager

// HandlerConfig handles configs for intents and handlers
func HandlerConfig(s *discordgo.Session, pm *playlist.PlaylistManager) {
	manager = pm
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsGuilds | discordgo.IntentsMessageContent
	s.AddHandler(MessageHandler)
}
