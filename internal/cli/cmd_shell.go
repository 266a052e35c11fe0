package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumber-jacker/task-cli/internal/task"
	"github.com/peterh/liner"

	flag "github.com/spf13/pflag"
)

const shellHelp = `  shell                        Interactive shell with history and completion`

const shellPrompt = "task> "

// ShellCmd returns the shell command: an interactive loop dispatching the
// same actions as the one-shot CLI. The store is re-opened for every line,
// so the tasks file stays consistent at each operation boundary.
func ShellCmd(cfg *task.Config) *Command {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "shell",
		Short: "Interactive shell",
		Long:  "Start an interactive shell. Lines are dispatched as actions (add, update, delete, mark-in-progress, mark-done, list). Type 'exit' or press Ctrl-D to leave.",
		Exec: func(o *IO, _ []string) error {
			return runShell(o, cfg)
		},
	}
}

// historyFile returns the path to the shell history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".task-cli_history")
}

func runShell(o *IO, cfg *task.Config) error {
	cmds := actionCommands(cfg)

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var matches []string

		for _, cmd := range cmds {
			if strings.HasPrefix(cmd.Name(), prefix) {
				matches = append(matches, cmd.Name())
			}
		}

		return matches
	})

	// Load history
	if f, err := os.Open(historyFile()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	o.Printf("task-cli shell (tasks file: %s)\n", cfg.TasksFileAbs)
	o.Println("Type 'help' for available actions.")
	o.Println()

	for {
		input, err := line.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				o.Println()
				saveHistory(line)

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		fields, splitErr := splitArgs(input)
		if splitErr != nil {
			o.ErrPrintln("Error:", splitErr)

			continue
		}

		action := fields[0]

		switch action {
		case "exit", "quit", "q":
			saveHistory(line)

			return nil
		case "help", "?":
			printUsage(o.Out())

			continue
		}

		cmd := lookupCommand(cmds, action)
		if cmd == nil {
			o.ErrPrintln("Error: unknown action:", action)

			continue
		}

		// Errors are printed by Run and keep the loop alive.
		_ = cmd.Run(o, fields[1:], false)
	}
}

// saveHistory persists shell history to disk.
func saveHistory(line *liner.State) {
	path := historyFile()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

var errUnclosedQuote = errors.New("unclosed quote")

// splitArgs tokenizes a shell line. Double and single quotes group words;
// there is no escaping beyond that.
func splitArgs(input string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)

	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, errUnclosedQuote
	}

	if inWord {
		args = append(args, current.String())
	}

	return args, nil
}
