package playlist

// History is the LIFO record of added song names that drives undo
type History struct {
	names []string
}

// Push records a name as the most recent addition
func (h *History) Push(name string) {
	h.names = append(h.names, name)
}

// Pop removes and returns the most recent name, ok is false when empty
func (h *History) Pop() (string, bool) {
	n := len(h.names) - 1
	if n < 0 {
		return "", false
	}
	name := h.names[n]
	h.names = h.names[:n]
	return name, true
}

func (h *History) Len() int {
	return len(h.names)
}
