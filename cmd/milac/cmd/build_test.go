package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), fnErr
}

func TestRunBuildWritesIRToStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.mila")
	source := "program p; begin writeln(1 + 2); end."
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runBuild(nil, []string{path})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "func @main") {
		t.Fatalf("expected IR output to declare @main, got:\n%s", out)
	}
}

func TestRunBuildReportsLoweringErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.mila")
	source := "program p; begin writeln(undefined); end."
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := runBuild(nil, []string{path}); err == nil {
		t.Fatal("expected an UnknownName error from lowering")
	}
}

func TestRunBuildWritesToOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.mila")
	out := filepath.Join(dir, "prog.ir")
	if err := os.WriteFile(src, []byte("program p; begin end."), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	buildOutput = out
	defer func() { buildOutput = "" }()

	if err := runBuild(nil, []string{src}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if !strings.Contains(string(content), "module p") {
		t.Fatalf("expected IR output, got:\n%s", content)
	}
}
