package cli

import (
	"fmt"
	"io"
	rdebug "runtime/debug"
	"strings"

	"github.com/lumber-jacker/task-cli/internal/task"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) < minArgs {
		printUsage(out)

		return 0
	}

	// Parse global flags
	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "Error:", err)

		return 1
	}

	// Load and validate config
	cfg, err := task.LoadConfig(task.LoadConfigInput{
		WorkDirOverride:   flags.workDir,
		ConfigPath:        flags.configPath,
		TasksFileOverride: flags.tasksFile,
		Env:               env,
	})
	if err != nil {
		fprintln(errOut, "Error:", err)
		printUsage(errOut)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(out)

		return 0
	}

	action := flags.remaining[0]

	// Handle help flags
	if action == "-h" || action == helpFlag {
		printUsage(out)

		return 0
	}

	ioCtx := NewIO(out, errOut)

	cmd := lookupCommand(commands(&cfg), action)
	if cmd == nil {
		fprintln(errOut, "Error: unknown action:", action)
		printUsage(errOut)

		return 1
	}

	return cmd.Run(ioCtx, flags.remaining[1:], flags.debug)
}

// actionCommands returns the commands that map directly onto store
// operations. The shell dispatches over the same set.
func actionCommands(cfg *task.Config) []*Command {
	return []*Command{
		AddCmd(cfg),
		UpdateCmd(cfg),
		DeleteCmd(cfg),
		MarkCmd(cfg, task.StatusInProgress),
		MarkCmd(cfg, task.StatusDone),
		ListCmd(cfg),
	}
}

func commands(cfg *task.Config) []*Command {
	return append(actionCommands(cfg), ShellCmd(cfg))
}

func lookupCommand(cmds []*Command, name string) *Command {
	for _, cmd := range cmds {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

type globalFlags struct {
	workDir    string
	configPath string
	tasksFile  string
	debug      bool
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the action
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	// --debug anywhere in the arguments enables debug mode
	for _, arg := range flags.remaining {
		if arg == "--debug" {
			flags.debug = true
		}
	}

	flags.remaining = stripDebugFlag(flags.remaining)

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("flag requires an argument: %s", arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// --file flag (tasks file override)
	if arg == "--file" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("flag requires an argument: %s", arg)
		}

		flags.tasksFile = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--file="); ok {
		flags.tasksFile = after

		return consumedOne, nil
	}

	// --debug flag
	if arg == "--debug" {
		flags.debug = true

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("unknown flag: %s", arg)
	}

	// Not a flag
	return consumedNone, nil
}

func stripDebugFlag(args []string) []string {
	var out []string

	for _, arg := range args {
		if arg == "--debug" {
			continue
		}

		out = append(out, arg)
	}

	return out
}

// missingOperand builds the InvalidArgument error for an action invoked
// with too few positional arguments.
func missingOperand(what, action string) error {
	return fmt.Errorf("%w: %s for '%s' command", task.ErrMissingOperand, what, action)
}

// printTrace dumps the stack at the error boundary. Only reached for
// unexpected errors when --debug was given.
func printTrace(o *IO) {
	o.ErrPrintln()
	o.ErrPrintln("Stack trace:")
	o.ErrPrintln(string(rdebug.Stack()))
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(writer io.Writer) {
	fprintln(writer, `task-cli - task tracker

Usage: task-cli [options] <action> [args]

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file
  --file <path>      Use specified tasks file
  --debug            Print stack trace for unexpected errors

Actions:`)
	fprintln(writer, addHelp)
	fprintln(writer, updateHelp)
	fprintln(writer, deleteHelp)
	fprintln(writer, markInProgressHelp)
	fprintln(writer, markDoneHelp)
	fprintln(writer, listHelp)
	fprintln(writer, shellHelp)
}
