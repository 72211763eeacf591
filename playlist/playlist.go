package playlist

import "slices"

// Stats counts how each command of a run was handled
type Stats struct {
	Added     int // addSong commands applied
	Undone    int // undo commands that removed a song
	UndoNoops int // undo commands with nothing to remove
	Ignored   int // unrecognized command text
}

type Result struct {
	Songs []string
	Stats Stats
}

// Process applies actions in order and returns the resulting playlist
func Process(actions []string) []string {
	return Run(actions).Songs
}

// Run applies actions in order. Each undo pops the most recent addition from
// the history and removes the last occurrence of that name, so duplicate
// names are undone instance by instance.
func Run(actions []string) Result {
	return RunCommands(ParseCommands(actions))
}

// RunCommands is Run over already parsed commands
func RunCommands(cmds []Command) Result {
	songs := []string{}
	var history History
	var stats Stats

	for _, cmd := range cmds {
		switch cmd.Kind {
		case AddSong:
			songs = append(songs, cmd.Name)
			history.Push(cmd.Name)
			stats.Added++
		case Undo:
			name, ok := history.Pop()
			if !ok {
				stats.UndoNoops++
				continue
			}
			var removed bool
			songs, removed = removeLast(songs, name)
			if removed {
				stats.Undone++
			} else {
				stats.UndoNoops++
			}
		default:
			stats.Ignored++
		}
	}

	return Result{Songs: songs, Stats: stats}
}

// removeLast deletes the last element equal to name, leaving the rest in order
func removeLast(songs []string, name string) ([]string, bool) {
	for i := len(songs) - 1; i >= 0; i-- {
		if songs[i] == name {
			return slices.Delete(songs, i, i+1), true
		}
	}
	return songs, false
}
