package commands

import (
	"fmt"

	"github.com/terzigolu/taskboard-go/pkg/config"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"github.com/terzigolu/taskboard-go/pkg/repository"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

// NewUserCommand creates the user command with all subcommands. These are
// admin operations that talk to the database directly, not through the API.
func NewUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage user accounts (admin, direct database access)",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a new user account",
				ArgsUsage: "<username>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "superuser",
						Usage: "Grant the new user cross-tenant visibility",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("usage: taskboard user create <username>")
					}
					return handleUserCreate(c.Args().First(), c.Bool("superuser"))
				},
			},
			{
				Name:  "list",
				Usage: "List all user accounts",
				Action: func(c *cli.Context) error {
					return handleUserList()
				},
			},
		},
	}
}

func handleUserCreate(username string, superuser bool) error {
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}

	user := models.User{
		Username:    username,
		IsSuperuser: superuser,
	}
	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}

	fmt.Printf("✅ Created user %s (id: %s)\n", user.Username, user.ID)
	if superuser {
		fmt.Println("⚠️  This user sees and can delete every task and todo.")
	}
	return nil
}

func handleUserList() error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	var users []models.User
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		return fmt.Errorf("could not list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users yet. Use 'taskboard user create <username>'.")
		return nil
	}

	for _, user := range users {
		marker := " "
		if user.IsSuperuser {
			marker = "*"
		}
		fmt.Printf("%s %-20s %s\n", marker, user.Username, user.ID)
	}
	fmt.Println("\n* superuser")
	return nil
}

func openDatabase() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return repository.NewDatabase(cfg)
}
