package task

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column widths for the list table.
const (
	colID          = 5
	colDescription = 30
	colStatus      = 12
	colCreated     = 20

	maxDescWidth   = 27
	ellipsis       = "..."
	separatorWidth = 70

	createdLayout = "2006-01-02 15:04"
)

// WriteList renders tasks in insertion order as a fixed-width table,
// optionally restricted to tasks matching status. Widths are display
// widths, so wide runes don't break column alignment.
func WriteList(w io.Writer, st State, status Status) {
	if len(st.Tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")

		return
	}

	tasks := st.Tasks

	if status != "" {
		tasks = Filter(st, status)
		if len(tasks) == 0 {
			fmt.Fprintf(w, "No tasks with status '%s' found.\n", status)

			return
		}
	}

	fmt.Fprintf(w, "\n%s %s %s %s\n",
		pad("ID", colID),
		pad("Description", colDescription),
		pad("Status", colStatus),
		pad("Created", colCreated))
	fmt.Fprintln(w, strings.Repeat("-", separatorWidth))

	for _, t := range tasks {
		fmt.Fprintf(w, "%s %s %s %s\n",
			pad(strconv.Itoa(t.ID), colID),
			pad(truncateDescription(t.Description), colDescription),
			pad(string(t.Status), colStatus),
			pad(t.CreatedAt.Local().Format(createdLayout), colCreated))
	}

	fmt.Fprintln(w)
}

// truncateDescription cuts descriptions wider than 27 cells and appends an
// ellipsis marker.
func truncateDescription(desc string) string {
	if runewidth.StringWidth(desc) <= maxDescWidth {
		return desc
	}

	return runewidth.Truncate(desc, maxDescWidth, "") + ellipsis
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
