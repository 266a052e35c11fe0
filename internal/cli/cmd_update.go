package cli

import (
	"fmt"
	"time"

	"github.com/lumber-jacker/task-cli/internal/task"

	flag "github.com/spf13/pflag"
)

const updateHelp = `  update <id> "<description>"  Replace a task's description`

// UpdateCmd returns the update command.
func UpdateCmd(cfg *task.Config) *Command {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: `update <id> "<description>"`,
		Short: "Replace a task's description",
		Exec: func(o *IO, args []string) error {
			if len(args) < 2 {
				return missingOperand("task ID or description", "update")
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

			st, updateErr := task.Update(st, id, args[1], "", time.Now())
			if updateErr != nil {
				return updateErr
			}

			saveErr := store.Save(st)
			if saveErr != nil {
				return fmt.Errorf("save tasks: %w", saveErr)
			}

			o.Printf("Task %d updated successfully\n", id)

			return nil
		},
	}
}
