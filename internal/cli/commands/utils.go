package commands

import (
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// promptPassword reads a password from the terminal without echoing it.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}

// checkmark returns a completion marker for list output.
func checkmark(done bool) string {
	if done {
		return "✅"
	}
	return "⬜"
}
