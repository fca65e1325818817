package app

// StatusBar holds the transient message shown on the prompt row while the
// prompt is not being edited.
type StatusBar struct {
	Message string
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.Message = msg
}

// ClearMessage clears the temporary status message. Returns true if there
// was one, so the caller knows the prompt row must be repainted.
func (s *StatusBar) ClearMessage() bool {
	had := s.Message != ""
	s.Message = ""
	return had
}
