package signal

import "errors"

var (
	// ErrDisconnected is returned by Wait when DisconnectAll tears down the
	// signal before the next fire arrives.
	ErrDisconnected = errors.New("signal: disconnected while waiting for next fire")
)
