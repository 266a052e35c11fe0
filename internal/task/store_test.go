package task

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestLoadMissingFileEstablishesDefault(t *testing.T) {
	t.Parallel()

	store := tempStore(t)

	st, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, st.Tasks)
	require.Equal(t, 0, st.Count)

	// The default is persisted immediately.
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Contains(t, string(data), `"tasks": []`)
	require.Contains(t, string(data), `"count": 0`)
}

func TestLoadEmptyFileEstablishesDefault(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.Path(), nil, 0o600))

	st, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, st.Tasks)
	require.Equal(t, 0, st.Count)
}

func TestLoadRecoversFromCorruptContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "this is not json {"},
		{name: "json array root", content: `[1, 2, 3]`},
		{name: "missing count field", content: `{"tasks": []}`},
		{name: "missing tasks field", content: `{"count": 7}`},
		{name: "wrong field types", content: `{"tasks": {}, "count": "x"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := tempStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0o600))

			st, err := store.Load()
			require.NoError(t, err)
			require.Empty(t, st.Tasks)
			require.Equal(t, 0, st.Count)

			// Recovery rewrites the file with the default.
			data, readErr := os.ReadFile(store.Path())
			require.NoError(t, readErr)
			require.Contains(t, string(data), `"count": 0`)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	store := tempStore(t)

	st, _, err := Create(NewState(), "Buy milk", testNow)
	require.NoError(t, err)

	st, _, err = Create(st, "Write report", testNow)
	require.NoError(t, err)

	st, err = Update(st, 1, "", StatusDone, testLater)
	require.NoError(t, err)

	st, err = Delete(st, 2)
	require.NoError(t, err)

	require.NoError(t, store.Save(st))

	loaded, err := store.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(st, loaded); diff != "" {
		t.Errorf("state mismatch after reload (-saved +loaded):\n%s", diff)
	}
}

func TestSavePrettyPrints(t *testing.T) {
	t.Parallel()

	store := tempStore(t)

	st, _, err := Create(NewState(), "Buy milk", testNow)
	require.NoError(t, err)
	require.NoError(t, store.Save(st))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	content := string(data)
	require.True(t, strings.HasPrefix(content, "{\n"), "state should be pretty-printed, got:\n%s", content)
	require.Contains(t, content, `    "tasks": [`)
	require.Contains(t, content, `"description": "Buy milk"`)
	require.Contains(t, content, `"status": "todo"`)
	require.Contains(t, content, `"updatedAt": null`)
	require.True(t, strings.HasSuffix(content, "\n"))
}

func TestSaveKeepsCountAcrossReload(t *testing.T) {
	t.Parallel()

	store := tempStore(t)

	st, _, err := Create(NewState(), "only", testNow)
	require.NoError(t, err)

	st, err = Delete(st, 1)
	require.NoError(t, err)
	require.NoError(t, store.Save(st))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, loaded.Tasks)
	require.Equal(t, 1, loaded.Count)

	// A new task after reload continues the sequence instead of reusing id 1.
	_, id, err := Create(loaded, "next", testLater)
	require.NoError(t, err)
	require.Equal(t, 2, id)
}

func TestLoadPreservesExistingContent(t *testing.T) {
	t.Parallel()

	store := tempStore(t)

	content := `{
    "tasks": [
        {
            "id": 1,
            "description": "From a prior run",
            "status": "in-progress",
            "createdAt": "2026-01-19T10:00:00Z",
            "updatedAt": "2026-01-19T14:00:00Z"
        }
    ],
    "count": 3
}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o600))

	st, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 3, st.Count)
	require.Len(t, st.Tasks, 1)
	require.Equal(t, "From a prior run", st.Tasks[0].Description)
	require.Equal(t, StatusInProgress, st.Tasks[0].Status)
	require.NotNil(t, st.Tasks[0].UpdatedAt)
	require.True(t, st.Tasks[0].UpdatedAt.Equal(testLater))
}
