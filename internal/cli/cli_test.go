package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCLI() (CLI, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	return CLI{version: "v1.2.3", stdout: &stdout, stderr: &stderr}, &stdout, &stderr
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExecuteReport(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 10)
	writeFile(t, filepath.Join(root, "b.txt"), 20)
	writeFile(t, filepath.Join(root, "sub", "c.txt"), 5)

	c, stdout, stderr := newTestCLI()

	if err := c.Execute([]string{root}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Execute() printed %d lines, want 4:\n%s", len(lines), stdout.String())
	}

	want := []string{"Total size: 35 B", "File count: 3", "Directory count: 2"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], w)
		}
	}

	if !strings.HasPrefix(lines[3], "Execution time: ") {
		t.Errorf("line 4 = %q, want execution time", lines[3])
	}

	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", stderr.String())
	}
}

func TestExecuteUsage(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "two arguments", args: []string{root, root}},
		{name: "unknown flag", args: []string{"--bogus", root}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, stdout, stderr := newTestCLI()

			if err := c.Execute(tt.args); err != nil {
				t.Fatalf("Execute() error = %v, want nil", err)
			}

			if stdout.Len() != 0 {
				t.Errorf("unexpected stdout output: %q", stdout.String())
			}

			if got := stderr.String(); got != "Usage: dircount <directory>\n" {
				t.Errorf("stderr = %q, want usage message", got)
			}
		})
	}
}

func TestExecuteNotDirectory(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, 3)

	c, stdout, stderr := newTestCLI()

	if err := c.Execute([]string{file}); err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout output: %q", stdout.String())
	}

	if got := stderr.String(); got != "Provided path is not a directory\n" {
		t.Errorf("stderr = %q, want not-a-directory message", got)
	}
}

func TestExecuteMissingPath(t *testing.T) {
	t.Parallel()

	c, stdout, _ := newTestCLI()

	if err := c.Execute([]string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatal("Execute() succeeded, want error")
	}

	if stdout.Len() != 0 {
		t.Errorf("partial report printed: %q", stdout.String())
	}
}

func TestExecuteVersion(t *testing.T) {
	t.Parallel()

	c, stdout, _ := newTestCLI()

	if err := c.Execute([]string{"--version"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := stdout.String(); got != "v1.2.3\n" {
		t.Errorf("stdout = %q, want version", got)
	}
}

func TestExecuteInit(t *testing.T) {
	t.Parallel()

	c, stdout, _ := newTestCLI()

	if err := c.Execute([]string{"--init", "zsh"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "#compdef dircount") {
		t.Errorf("stdout does not contain a zsh completion script")
	}

	if err := c.Execute([]string{"--init", "tcsh"}); err == nil {
		t.Error("Execute(--init tcsh) succeeded, want error")
	}
}
