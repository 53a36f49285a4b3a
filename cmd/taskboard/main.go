package main

import (
	"log"
	"os"

	"github.com/terzigolu/taskboard-go/internal/cli/commands"
	"github.com/urfave/cli/v2"
)

// Version will be set during build with ldflags
var Version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "taskboard",
		Usage:   "Multi-tenant task and todo tracking CLI",
		Version: Version,
		Commands: []*cli.Command{
			// Account
			commands.NewLoginCommand(),
			commands.NewLogoutCommand(),
			commands.NewWhoamiCommand(),

			// Resources
			commands.NewTaskCommand(),
			commands.NewTodoCommand(),

			// Admin
			commands.NewUserCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
