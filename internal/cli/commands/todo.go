package commands

import (
	"fmt"
	"strings"

	"github.com/terzigolu/taskboard-go/internal/api"
	"github.com/urfave/cli/v2"
)

// NewTodoCommand creates the todo command with all subcommands
func NewTodoCommand() *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Work with your todos through the API",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your todos",
				Action: func(c *cli.Context) error {
					return handleTodoList()
				},
			},
		},
	}
}

func handleTodoList() error {
	client := api.NewClient()
	todos, err := client.ListTodos()
	if err != nil {
		return err
	}

	if len(todos) == 0 {
		fmt.Println("No todos yet.")
		return nil
	}

	for _, todo := range todos {
		line := fmt.Sprintf("%s %s", checkmark(todo.Completed), todo.Title)
		if todo.TaskTitle != nil {
			line += fmt.Sprintf(" (in %s)", *todo.TaskTitle)
		}
		if len(todo.Tags) > 0 {
			line += " [" + strings.Join(todo.Tags, ", ") + "]"
		}
		if todo.DueDate != nil {
			line += " due " + todo.DueDate.Format("2006-01-02")
		}
		fmt.Println(line)
	}
	return nil
}
