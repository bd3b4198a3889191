package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrConnection is returned when a network cannot be reached or the handshake fails.
	ErrConnection = fmt.Errorf("connection failed")
	// ErrProtocolViolation marks a reply the chat server should never have sent.
	ErrProtocolViolation = fmt.Errorf("protocol violation")

	ErrRouting        = fmt.Errorf("routing failed")
	ErrUnknownUser    = fmt.Errorf("%w: unknown user", ErrRouting)
	ErrUnknownNetwork = fmt.Errorf("%w: unknown network", ErrRouting)

	ErrMalformedCommand = fmt.Errorf("malformed command")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrTransport        = fmt.Errorf("transport failure")

	ErrSessionOffline      = fmt.Errorf("session is not online")
	ErrSessionDisconnected = fmt.Errorf("session disconnected")
	ErrSessionClosed       = fmt.Errorf("session closed")

	ErrInvalidServer = fmt.Errorf("invalid server configuration")
)

var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)
