package events

// IsListening exposes isListening to the external integration test package.
func (l *NotifyListener) IsListening(channel string) bool {
	return l.isListening(channel)
}
