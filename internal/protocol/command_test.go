package protocol

import (
	"testing"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/test"
)

func TestIsTerminationCommand(t *testing.T) {
	tests := []struct {
		msg  string
		term bool
	}{
		{"quit", true},
		{"exit", true},
		{"QUIT", true},
		{"QuIt", true},
		{"exit\n", true},
		{"  exit\n", true},
		{"\t\r\nquit", true},
		{"quit now", true},
		{"exit\tlater\n", true},
		{"quitter", false},
		{"exiting", false},
		{"quit!", false},
		{"", false},
		{"   \t\r\n", false},
		{"hello", false},
		{"say quit", false},
		{"quitquitquit", false},
	}
	for _, tc := range tests {
		test.Equal(t, tc.term, IsTerminationCommand([]byte(tc.msg)))
	}
}

func TestIsTerminationCommandIsPure(t *testing.T) {
	msg := []byte("  quit now\n")
	first := IsTerminationCommand(msg)
	second := IsTerminationCommand(msg)
	test.Equal(t, first, second)
	test.Equal(t, []byte("  quit now\n"), msg)
}
