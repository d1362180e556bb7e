package mention

// Error is a general error for mention operations.
type Error string

func (e Error) Error() string {
	return "mention: " + string(e)
}
