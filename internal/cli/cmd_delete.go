package cli

import (
	"fmt"

	"github.com/lumber-jacker/task-cli/internal/task"

	flag "github.com/spf13/pflag"
)

const deleteHelp = `  delete <id>                  Delete a task`

// DeleteCmd returns the delete command.
func DeleteCmd(cfg *task.Config) *Command {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID. Deleted IDs are never reassigned.",
		Exec: func(o *IO, args []string) error {
			if len(args) < 1 {
				return missingOperand("task ID", "delete")
			}

			id, err := task.ParseID(args[0])
			if err != nil {
				return err
			}

			store := task.NewStore(cfg.TasksFileAbs)

			st, loadErr := store.Load()
			if loadErr != nil {
				return loadErr
			}

			st, deleteErr := task.Delete(st, id)
			if deleteErr != nil {
				return deleteErr
			}

			saveErr := store.Save(st)
			if saveErr != nil {
				return fmt.Errorf("save tasks: %w", saveErr)
			}

			o.Printf("Task %d deleted successfully\n", id)

			return nil
		},
	}
}
