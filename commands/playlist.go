package commands

import (
	"Setlist/playlist"
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
)

var manager *playlist.PlaylistManager

// SetManager sets the playlist manager used by the slash command handlers
func SetManager(pm *playlist.PlaylistManager) {
	manager = pm
}

// playList runs the actions option through the playlist manager
func playList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *interactionError {
	line, iErr := actionsOption(i.ApplicationCommandData().Options)
	if iErr != nil {
		return iErr
	}

	out := manager.Play(ctx, "slash", line)

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "`" + out + "`",
		},
	}); err != nil {
		return &interactionError{err, "Couldn't send the playlist"}
	}
	return nil
}

// actionsOption pulls the command list out of the slash command options
func actionsOption(options []*discordgo.ApplicationCommandInteractionDataOption) (string, *interactionError) {
	for _, opt := range options {
		if opt.Name == "actions" && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue(), nil
		}
	}
	return "", &interactionError{
		errors.New("playlist invoked without actions option"),
		"Give me a command list, e.g. [\"addSong('A')\", \"undo()\"]",
	}
}
