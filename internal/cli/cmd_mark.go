package cli

import (
	"fmt"
	"time"

	"github.com/lumber-jacker/task-cli/internal/task"

	flag "github.com/spf13/pflag"
)

const (
	markInProgressHelp = `  mark-in-progress <id>        Set a task's status to in-progress`
	markDoneHelp       = `  mark-done <id>               Set a task's status to done`
)

// MarkCmd returns a status-marking command for the given status. Marking is
// sugar for update with a fixed status and no description change.
func MarkCmd(cfg *task.Config, status task.Status) *Command {
	fs := flag.NewFlagSet("mark", flag.ContinueOnError)
	name := "mark-" + string(status)

	return &Command{
		Flags: fs,
		Usage: name + " <id>",
		Short: fmt.Sprintf("Set a task's status to %s", status),
		Exec: func(o *IO, args []string) error {
			if len(args) < 1 {
				return missingOperand("task ID", name)
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

			st, updateErr := task.Update(st, id, "", status, time.Now())
			if updateErr != nil {
				return updateErr
			}

			saveErr := store.Save(st)
			if saveErr != nil {
				return fmt.Errorf("save tasks: %w", saveErr)
			}

			o.Printf("Task %d marked as '%s' successfully\n", id, status)

			return nil
		},
	}
}
