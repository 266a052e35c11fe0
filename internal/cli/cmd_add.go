package cli

import (
	"fmt"
	"time"

	"github.com/lumber-jacker/task-cli/internal/task"

	flag "github.com/spf13/pflag"
)

const addHelp = `  add "<description>"          Create a new task, prints its ID`

// AddCmd returns the add command.
func AddCmd(cfg *task.Config) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: `add "<description>"`,
		Short: "Create a new task",
		Long:  "Create a new task with status todo. Prints the assigned ID on success.",
		Exec: func(o *IO, args []string) error {
			if len(args) < 1 {
				return missingOperand("task description", "add")
			}

			store := task.NewStore(cfg.TasksFileAbs)

			st, err := store.Load()
			if err != nil {
				return err
			}

			st, id, createErr := task.Create(st, args[0], time.Now())
			if createErr != nil {
				return createErr
			}

			saveErr := store.Save(st)
			if saveErr != nil {
				return fmt.Errorf("save tasks: %w", saveErr)
			}

			o.Printf("Task added successfully (ID: %d)\n", id)

			return nil
		},
	}
}
