package task

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// State is the full persisted document: all tasks in insertion order plus
// the highest id ever assigned. Count never decreases and ids are never
// reused, so deleting a task leaves a permanent gap in the sequence.
type State struct {
	Tasks []Task `json:"tasks"`
	Count int    `json:"count"`
}

// NewState returns the empty default state.
func NewState() State {
	return State{Tasks: []Task{}}
}

// Create appends a new todo task and returns the resulting state and the
// assigned id (Count+1). The input state is not modified.
func Create(st State, description string, now time.Time) (State, int, error) {
	if strings.TrimSpace(description) == "" {
		return State{}, 0, ErrEmptyDescription
	}

	id := st.Count + 1

	tasks := slices.Clone(st.Tasks)
	tasks = append(tasks, Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
	})

	return State{Tasks: tasks, Count: id}, id, nil
}

// Update replaces the description and/or status of the task with the given
// id. An empty description keeps the existing one; an empty status keeps
// the existing one. UpdatedAt is set on every successful call, even when
// both fields are left as-is.
func Update(st State, id int, description string, status Status, now time.Time) (State, error) {
	if status != "" {
		_, err := ParseStatus(string(status))
		if err != nil {
			return State{}, err
		}
	}

	tasks := slices.Clone(st.Tasks)

	for idx := range tasks {
		if tasks[idx].ID != id {
			continue
		}

		if description != "" {
			tasks[idx].Description = description
		}

		if status != "" {
			tasks[idx].Status = status
		}

		updated := now
		tasks[idx].UpdatedAt = &updated

		return State{Tasks: tasks, Count: st.Count}, nil
	}

	return State{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}

// Delete removes the task with the given id. Count is untouched, so the id
// is never reassigned by a later Create.
func Delete(st State, id int) (State, error) {
	tasks := slices.DeleteFunc(slices.Clone(st.Tasks), func(t Task) bool {
		return t.ID == id
	})

	if len(tasks) == len(st.Tasks) {
		return State{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	return State{Tasks: tasks, Count: st.Count}, nil
}

// Filter returns the tasks matching status, in insertion order. An empty
// status matches everything.
func Filter(st State, status Status) []Task {
	if status == "" {
		return st.Tasks
	}

	var matched []Task

	for _, t := range st.Tasks {
		if t.Status == status {
			matched = append(matched, t)
		}
	}

	return matched
}
