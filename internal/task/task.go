// Package task implements the task store: the on-disk state document, the
// operations that transform it, and the policies around loading and
// persisting it. Operations are pure transforms on an explicit State value;
// file I/O lives only in Store.
package task

import (
	"fmt"
	"strconv"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

// Status constants. These are the only valid values; anything else is
// rejected by ParseStatus.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Task is a single tracked task as stored on disk.
type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// ParseStatus validates raw as a status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of todo, in-progress, done)", ErrInvalidStatus, raw)
	}
}

// ParseID converts a task id operand to an integer.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (must be a number)", ErrInvalidID, raw)
	}

	return id, nil
}
