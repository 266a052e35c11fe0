package cli

import (
	"testing"
)

func TestUpdateCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantExit   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "updates description",
			args:       []string{"update", "1", "Buy oat milk"},
			wantExit:   0,
			wantStdout: "Task 1 updated successfully",
		},
		{
			name:       "error on missing operands",
			args:       []string{"update", "1"},
			wantExit:   1,
			wantStderr: "Error: missing operand: task ID or description for 'update' command",
		},
		{
			name:       "error on non-numeric id",
			args:       []string{"update", "abc", "text"},
			wantExit:   1,
			wantStderr: `Error: invalid task ID: "abc" (must be a number)`,
		},
		{
			name:       "error on unknown id",
			args:       []string{"update", "99", "text"},
			wantExit:   1,
			wantStderr: "Error: task not found: 99",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewCLI(t)
			r.MustRun("add", "Buy milk")

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

func TestUpdatePersistsNewDescription(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	r.MustRun("add", "Buy milk")
	r.MustRun("update", "1", "Buy oat milk")

	st := r.ReadState()
	if st.Tasks[0].Description != "Buy oat milk" {
		t.Errorf("description = %q, want %q", st.Tasks[0].Description, "Buy oat milk")
	}

	if st.Tasks[0].UpdatedAt == nil {
		t.Error("updatedAt should be set after update")
	}
}

func TestUpdateFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	r.MustRun("add", "Buy milk")
	r.MustFail("update", "99", "poof")

	st := r.ReadState()
	if st.Tasks[0].Description != "Buy milk" || st.Tasks[0].UpdatedAt != nil {
		t.Errorf("state changed by failed update: %+v", st.Tasks[0])
	}
}
