package playlist

import "strings"

const (
	addSongPrefix = "addSong('"
	addSongSuffix = "')"
	undoCommand   = "undo()"
)

type CommandKind int

const (
	Unknown CommandKind = iota
	AddSong
	Undo
)

func (k CommandKind) String() string {
	switch k {
	case AddSong:
		return "addSong"
	case Undo:
		return "undo"
	default:
		return "unknown"
	}
}

type Command struct {
	Kind CommandKind
	Name string // Song name for AddSong, raw text for Unknown
}

// ParseCommand classifies a single command string. Text that is neither an
// addSong nor an undo call comes back as Unknown and is skipped by Run.
func ParseCommand(text string) Command {
	if strings.HasPrefix(text, addSongPrefix) {
		end := len(text) - len(addSongSuffix)
		// Too short to hold a closing ') after the prefix, e.g. addSong('A
		if end < len(addSongPrefix) {
			return Command{Kind: AddSong}
		}
		return Command{Kind: AddSong, Name: text[len(addSongPrefix):end]}
	}
	if text == undoCommand {
		return Command{Kind: Undo}
	}
	return Command{Kind: Unknown, Name: text}
}

// ParseCommands maps ParseCommand over actions, keeping input order
func ParseCommands(actions []string) []Command {
	cmds := make([]Command, 0, len(actions))
	for _, a := range actions {
		cmds = append(cmds, ParseCommand(a))
	}
	return cmds
}
