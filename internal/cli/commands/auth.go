package commands

import (
	"fmt"

	"github.com/terzigolu/taskboard-go/internal/api"
	"github.com/terzigolu/taskboard-go/internal/auth"
	"github.com/terzigolu/taskboard-go/internal/config"
	"github.com/urfave/cli/v2"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "Log in and store the API token in the system keyring",
		ArgsUsage: "<username>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: taskboard login <username>")
			}
			return handleLogin(c.Args().First())
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Drop the stored API token",
		Action: func(c *cli.Context) error {
			if err := auth.DeleteToken(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the account the stored token belongs to",
		Action: func(c *cli.Context) error {
			client := api.NewClient()
			result, err := client.Validate()
			if err != nil {
				return err
			}
			fmt.Printf("%s (id: %s)\n", result.Username, result.UserID)
			return nil
		},
	}
}

func handleLogin(username string) error {
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	client := api.NewClient()
	result, err := client.Login(username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := auth.StoreToken(result.Token); err != nil {
		return fmt.Errorf("could not store token: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err == nil {
		cfg.Username = result.Username
		_ = config.SaveConfig(cfg) // Best effort
	}

	fmt.Printf("✅ Logged in as %s\n", result.Username)
	return nil
}
