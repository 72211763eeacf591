package handlers

import (
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// HelpEmbedding creates the embedding for the help menu
func HelpEmbedding(s *discordgo.Session, m *discordgo.MessageCreate) {
	botAvatarURL := s.State.User.AvatarURL("64")
	s.ChannelMessageSendEmbed(m.ChannelID, helpEmbed(viper.GetString("prefix"), botAvatarURL))
}

func helpEmbed(prefix, avatarURL string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Setlist Help",
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: avatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  prefix + "playlist [\"addSong('A')\", \"undo()\"]",
				Value: "Builds a playlist from addSong and undo commands.",
			},
			{
				Name:  "/playlist",
				Value: "Same as above, as a slash command.",
			},
		},
	}
}
