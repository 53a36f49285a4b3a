package commands

import (
	"fmt"

	"github.com/terzigolu/taskboard-go/internal/api"
	"github.com/urfave/cli/v2"
)

// NewTaskCommand creates the task command with all subcommands
func NewTaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Work with your tasks through the API",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your tasks",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "with-todos",
						Aliases: []string{"t"},
						Usage:   "Include each task's todos in the output",
					},
				},
				Action: func(c *cli.Context) error {
					return handleTaskList(c.Bool("with-todos"))
				},
			},
		},
	}
}

func handleTaskList(withTodos bool) error {
	client := api.NewClient()
	tasks, err := client.ListTasks(withTodos)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet.")
		return nil
	}

	for _, task := range tasks {
		fmt.Printf("📋 %s (%d todos)\n", task.Title, task.TodosCount)
		if task.Description != nil && *task.Description != "" {
			fmt.Printf("   %s\n", *task.Description)
		}
		for _, todo := range task.Todos {
			fmt.Printf("   %s %s\n", checkmark(todo.Completed), todo.Title)
		}
	}
	return nil
}
