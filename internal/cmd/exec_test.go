package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/runmenu/internal/log"
)

func logCtx(buf *bytes.Buffer) context.Context {
	l := log.New(buf, true, false)
	return log.WithLogger(context.Background(), l)
}

func bufferedRunner(dir string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Runner{Dir: dir, Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRun_Success(t *testing.T) {
	t.Parallel()
	r, stdout, _ := bufferedRunner("")
	if err := r.Run(logCtx(&bytes.Buffer{}), "echo", "hello"); err != nil {
		t.Fatalf("Run(echo hello) = %v, want nil", err)
	}
	if got := stdout.String(); got != "hello\n" {
		t.Errorf("stdout = %q, want %q", got, "hello\n")
	}
}

func TestRun_StreamsStderr(t *testing.T) {
	t.Parallel()
	r, _, stderr := bufferedRunner("")
	err := r.Run(logCtx(&bytes.Buffer{}), "sh", "-c", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("Run = nil, want error")
	}
	if got := stderr.String(); got != "bad thing\n" {
		t.Errorf("stderr = %q, want %q", got, "bad thing\n")
	}
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()
	r, stdout, _ := bufferedRunner("")
	r.Stdin = strings.NewReader("from operator\n")
	if err := r.Run(logCtx(&bytes.Buffer{}), "cat"); err != nil {
		t.Fatalf("Run(cat) = %v, want nil", err)
	}
	if got := stdout.String(); got != "from operator\n" {
		t.Errorf("stdout = %q, want %q", got, "from operator\n")
	}
}

func TestRun_Dir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r, stdout, _ := bufferedRunner(dir)
	if err := r.Run(logCtx(&bytes.Buffer{}), "pwd"); err != nil {
		t.Fatalf("Run(pwd) = %v, want nil", err)
	}
	if got := strings.TrimSpace(stdout.String()); filepath.Base(got) != filepath.Base(dir) {
		t.Errorf("pwd = %q, want directory %q", got, dir)
	}
}

func TestRun_LogsCommand(t *testing.T) {
	t.Parallel()
	var logBuf bytes.Buffer
	r, _, _ := bufferedRunner("")
	if err := r.Run(logCtx(&logBuf), "echo", "hi"); err != nil {
		t.Fatalf("Run(echo hi) = %v, want nil", err)
	}
	if got := logBuf.String(); !strings.Contains(got, "$ echo hi") {
		t.Errorf("log = %q, want to contain %q", got, "$ echo hi")
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx(&bytes.Buffer{}))
	cancel()
	r, _, _ := bufferedRunner("")
	err := r.Run(ctx, "sleep", "10")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run with cancelled context = %v, want context.Canceled", err)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notExecutable := filepath.Join(dir, "script.sh")
	if err := os.WriteFile(notExecutable, []byte("#!/bin/sh\nexit 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		program  string
		args     []string
		want     Failure
		wantCode int
	}{
		{"success", "true", nil, FailureNone, -1},
		{"non-zero exit", "sh", []string{"-c", "exit 3"}, FailureExit, 3},
		{"missing from PATH", "runmenu-no-such-program", nil, FailureNotFound, -1},
		{"missing relative script", filepath.Join(dir, "missing.sh"), nil, FailureNotFound, -1},
		{"not executable", notExecutable, nil, FailurePermission, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, _, _ := bufferedRunner("")
			err := r.Run(logCtx(&bytes.Buffer{}), tt.program, tt.args...)
			if got := Classify(err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", err, got, tt.want)
			}
			if got := ExitCode(err); got != tt.wantCode {
				t.Errorf("ExitCode(%v) = %d, want %d", err, got, tt.wantCode)
			}
		})
	}
}

func TestClassify_Other(t *testing.T) {
	t.Parallel()
	if got := Classify(errors.New("boom")); got != FailureOther {
		t.Errorf("Classify(boom) = %v, want %v", got, FailureOther)
	}
}

func TestFailure_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    Failure
		want string
	}{
		{FailureNone, "none"},
		{FailureExit, "exit"},
		{FailureNotFound, "not found"},
		{FailurePermission, "permission denied"},
		{FailureOther, "other"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Failure(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
