package handlers

import (
	"context"
	"strings"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// MessageHandler handles message commands
func MessageHandler(s *discordgo.Session, m *discordgo.MessageCreate) {
	// If message is sent from the bot
	if m.Author.ID == s.State.User.ID {
		return
	}
	prefix := viper.GetString("prefix")

	firstWord, rest, ok := splitCommand(m.Content, prefix)
	if !ok {
		return
	}

	switch firstWord {
	case prefix:
		s.ChannelMessageSend(m.ChannelID, "type `"+prefix+"help` to open help menu.") // invalid prefix command
	case prefix + "help":
		HelpEmbedding(s, m)
	case prefix + "playlist":
		ctx := context.WithValue(context.Background(), log.Key, log.Fields{
			"author_id":  m.Author.ID,
			"channel_id": m.ChannelID,
			"guild_id":   m.GuildID,
			"user":       m.Author.Username,
			"command":    "playlist",
		})
		log.WithContext(ctx).Info("Invoking message command")
		if _, err := s.ChannelMessageSend(m.ChannelID, playlistReply(ctx, rest)); err != nil {
			log.WithError(err).Error("Failed to send playlist reply")
		}
	}
}

// splitCommand returns the first word of a prefixed message and the text after it
func splitCommand(content, prefix string) (string, string, bool) {
	if len(content) == 0 || len(prefix) == 0 {
		return "", "", false
	}
	// Checking for presence of prefix
	if content[0] != prefix[0] {
		return "", "", false
	}

	spaceIndex := strings.IndexByte(content, ' ')
	if spaceIndex < 0 {
		return content, "", true
	}
	return content[:spaceIndex], strings.TrimSpace(content[spaceIndex:]), true
}

// playlistReply runs the command list and wraps the result in a code span
func playlistReply(ctx context.Context, line string) string {
	return "`" + manager.Play(ctx, "message", line) + "`"
}
