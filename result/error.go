package result

// Error is returned when a failed Result is unwrapped.
type Error struct {
	Message string
	Context string
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return e.Context + " " + e.Message
}
