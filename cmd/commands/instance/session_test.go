package instance

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestProgressFor_NonTerminalWriter(t *testing.T) {
	if progressFor(&bytes.Buffer{}) != nil {
		t.Error("expected no spinner for a buffer")
	}
}

func TestProgressFor_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if progressFor(f) != nil {
		t.Error("expected no spinner for a regular file")
	}
}

func TestNeedsSession(t *testing.T) {
	for _, cmd := range Commands() {
		if !NeedsSession(cmd) {
			t.Errorf("%s: expected session annotation", cmd.Name())
		}
	}
	if NeedsSession(&cobra.Command{Use: "status"}) {
		t.Error("plain command must not need a session")
	}
}
