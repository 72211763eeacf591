package commands

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandsAdd(t *testing.T) {
	c := &Commands{}
	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *interactionError {
		return nil
	}

	c.Add(&discordgo.ApplicationCommand{Name: "playlist"}, handler)

	assert.Len(t, c.commands, 1)
	assert.Contains(t, c.handlers, "playlist")
}

func TestActionsOption(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "actions", Type: discordgo.ApplicationCommandOptionString, Value: `["addSong('A')"]`},
	}

	line, iErr := actionsOption(options)

	assert.Nil(t, iErr)
	assert.Equal(t, `["addSong('A')"]`, line)
}

func TestActionsOption_Missing(t *testing.T) {
	line, iErr := actionsOption(nil)

	assert.NotNil(t, iErr)
	assert.Error(t, iErr.err)
	assert.Empty(t, line)
}

func TestInteractionUser(t *testing.T) {
	member := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "1"}},
	}}
	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "2"},
	}}
	empty := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}

	u, iErr := interactionUser(member)
	assert.Nil(t, iErr)
	assert.Equal(t, "1", u.ID)

	u, iErr = interactionUser(dm)
	assert.Nil(t, iErr)
	assert.Equal(t, "2", u.ID)

	_, iErr = interactionUser(empty)
	assert.NotNil(t, iErr)
}
