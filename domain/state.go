package domain

type SessionState int

const (
	Disconnected SessionState = iota
	Connecting
	Online
	Reconnecting
	Closed
)

func (s SessionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Online:
		return "online"
	case Reconnecting:
		return "reconnecting"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s SessionState) Terminal() bool {
	return s == Closed
}
