package auth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "taskboard-cli"
	keyringUser    = "api-token"
)

// StoreToken saves the API token in the system keyring, falling back to a
// file under ~/.taskboard on headless systems.
func StoreToken(token string) error {
	if err := keyring.Set(keyringService, keyringUser, token); err == nil {
		return nil
	}
	return storeFallbackToken(token)
}

// LoadToken retrieves the stored API token. An empty string with a nil error
// never happens; a missing token is an error.
func LoadToken() (string, error) {
	if token, err := keyring.Get(keyringService, keyringUser); err == nil {
		return token, nil
	}
	return loadFallbackToken()
}

// DeleteToken removes the stored API token from keyring and fallback file.
func DeleteToken() error {
	keyringErr := keyring.Delete(keyringService, keyringUser)
	fallbackErr := deleteFallbackToken()
	if keyringErr != nil && fallbackErr != nil {
		return fmt.Errorf("no stored token to delete")
	}
	return nil
}

// Fallback file operations for headless systems

func fallbackPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskboard", ".token"), nil
}

func storeFallbackToken(token string) error {
	path, err := fallbackPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

func loadFallbackToken() (string, error) {
	path, err := fallbackPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("not logged in: %w", err)
	}
	return string(data), nil
}

func deleteFallbackToken() error {
	path, err := fallbackPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
