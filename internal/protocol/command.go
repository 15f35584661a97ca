package protocol

import (
	"bytes"
)

// termination token comparison is bounded at 7 bytes
const maxTermTokenLen = 7

const termWhitespace = " \t\r\n"

var (
	quitToken = []byte("quit")
	exitToken = []byte("exit")
)

// IsTerminationCommand reports whether the first whitespace delimited token
// of msg is "quit" or "exit", ignoring case. Leading spaces, tabs, and line
// endings are skipped and anything after the first token is ignored. Empty
// or all whitespace input is not a command.
func IsTerminationCommand(msg []byte) bool {
	msg = bytes.TrimLeft(msg, termWhitespace)
	if len(msg) == 0 {
		return false
	}

	end := bytes.IndexAny(msg, termWhitespace)
	if end == -1 {
		end = len(msg)
	}
	token := msg[:end]
	if len(token) > maxTermTokenLen {
		return false
	}

	return bytes.EqualFold(token, quitToken) || bytes.EqualFold(token, exitToken)
}
