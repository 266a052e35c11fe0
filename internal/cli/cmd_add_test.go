package cli

import (
	"testing"

	"github.com/lumber-jacker/task-cli/internal/task"
)

func TestAddCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantExit   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "creates task",
			args:       []string{"add", "Buy milk"},
			wantExit:   0,
			wantStdout: "Task added successfully (ID: 1)",
		},
		{
			name:       "error on missing description",
			args:       []string{"add"},
			wantExit:   1,
			wantStderr: "Error: missing operand: task description for 'add' command",
		},
		{
			name:       "error on empty description",
			args:       []string{"add", ""},
			wantExit:   1,
			wantStderr: "Error: task description cannot be empty",
		},
		{
			name:       "error on whitespace description",
			args:       []string{"add", "   "},
			wantExit:   1,
			wantStderr: "Error: task description cannot be empty",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewCLI(t)

			stdout, stderr, code := r.Run(tt.args...)
			if code != tt.wantExit {
				t.Fatalf("exit code = %d, want %d\nstderr: %s", code, tt.wantExit, stderr)
			}

			if tt.wantStdout != "" {
				AssertContains(t, stdout, tt.wantStdout)
			}

			if tt.wantStderr != "" {
				AssertContains(t, stderr, tt.wantStderr)
			}
		})
	}
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	r.MustRun("add", "first")
	r.MustRun("add", "second")
	r.MustRun("delete", "2")

	out := r.MustRun("add", "third")
	AssertContains(t, out, "(ID: 3)")

	st := r.ReadState()
	if st.Count != 3 {
		t.Errorf("count = %d, want 3", st.Count)
	}
}

func TestAddPersistsTask(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	r.MustRun("add", "Buy milk")

	st := r.ReadState()
	if len(st.Tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(st.Tasks))
	}

	got := st.Tasks[0]
	if got.ID != 1 || got.Description != "Buy milk" || got.Status != task.StatusTodo {
		t.Errorf("unexpected task: %+v", got)
	}

	if got.CreatedAt.IsZero() {
		t.Error("createdAt should be set")
	}

	if got.UpdatedAt != nil {
		t.Error("updatedAt should be absent on a new task")
	}
}

func TestAddFailedValidationWritesNoTask(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	r.MustRun("add", "keep me")
	r.MustFail("add", "   ")

	st := r.ReadState()
	if len(st.Tasks) != 1 || st.Count != 1 {
		t.Errorf("state changed by failed add: %+v", st)
	}
}
