package client

// RejectedError marks a call the backend completed but refused, as opposed to
// a transport failure.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}
