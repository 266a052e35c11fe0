// Package main provides task-cli, a single-user task tracker backed by a
// local JSON file.
package main

import (
	"os"
	"strings"

	"github.com/lumber-jacker/task-cli/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
