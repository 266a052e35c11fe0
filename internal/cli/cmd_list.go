package cli

import (
	"github.com/lumber-jacker/task-cli/internal/task"

	flag "github.com/spf13/pflag"
)

const listHelp = `  list [status]                List tasks, optionally filtered by status`

// ListCmd returns the list command.
func ListCmd(cfg *task.Config) *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "list [status]",
		Short: "List tasks",
		Long:  "List all tasks in creation order, optionally restricted to one of todo, in-progress, done.",
		Exec: func(o *IO, args []string) error {
			var status task.Status

			if len(args) > 0 {
				var err error

				status, err = task.ParseStatus(args[0])
				if err != nil {
					return err
				}
			}

			store := task.NewStore(cfg.TasksFileAbs)

			st, err := store.Load()
			if err != nil {
				return err
			}

			task.WriteList(o.Out(), st, status)

			return nil
		},
	}
}
