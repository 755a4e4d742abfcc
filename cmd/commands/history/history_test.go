package history

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/devstork/internal/database"
	"nathanbeddoewebdev/devstork/internal/history"
)

// seedHistory points the database at a temp file and saves entries into it.
func seedHistory(t *testing.T, entries ...*history.Entry) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "devstork.db"))
	t.Cleanup(database.ResetPath)

	repo, err := history.Open()
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	defer repo.Close()
	for _, e := range entries {
		if err := repo.Save(e); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
}

func execHistory(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestList_Table(t *testing.T) {
	seedHistory(t,
		&history.Entry{Operation: "create", Outcome: history.OutcomeCreated, ServerID: "abc", ServerName: "box", ConfigPath: "conf.yaml", DurationMs: 1500},
		&history.Entry{Operation: "delete", Outcome: history.OutcomeNothing, ConfigPath: "conf.yaml", DurationMs: 3},
	)

	stdout, _, err := execHistory(t, "list")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{"OPERATION", "abc (box)", "created", "1.5s", "nothing", "3ms"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
}

func TestList_FilterByServerJSON(t *testing.T) {
	seedHistory(t,
		&history.Entry{Operation: "create", Outcome: history.OutcomeCreated, ServerID: "abc"},
		&history.Entry{Operation: "create", Outcome: history.OutcomeCreated, ServerID: "def"},
	)

	stdout, _, err := execHistory(t, "list", "--server", "def", "-o", "json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var entries []history.Entry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(entries) != 1 || entries[0].ServerID != "def" {
		t.Errorf("expected only server def, got %+v", entries)
	}
}

func TestList_Empty(t *testing.T) {
	seedHistory(t)

	stdout, _, err := execHistory(t, "list")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stdout != "No history entries found.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestList_InvalidFlags(t *testing.T) {
	seedHistory(t)

	if _, _, err := execHistory(t, "list", "--limit", "0"); err == nil {
		t.Error("expected error for zero limit")
	}
	if _, _, err := execHistory(t, "list", "-o", "yaml"); err == nil {
		t.Error("expected error for unsupported output")
	}
}

func TestPrune(t *testing.T) {
	seedHistory(t,
		&history.Entry{Operation: "create", Outcome: history.OutcomeCreated, Timestamp: time.Now().UTC().Add(-40 * 24 * time.Hour)},
		&history.Entry{Operation: "delete", Outcome: history.OutcomeDeleted},
	)

	stdout, _, err := execHistory(t, "prune", "--older-than", "30d")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout, "Removed 1 history") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "30d", want: 30 * 24 * time.Hour},
		{in: "72h", want: 72 * time.Hour},
		{in: "xd", wantErr: true},
		{in: "-1h", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseDuration(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
