package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "node.sh")
	if err := os.WriteFile(file, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		dir     string
		wantErr string
	}{
		{"empty means cwd", "", ""},
		{"existing directory", dir, ""},
		{"file", file, "is not a directory"},
		{"missing", filepath.Join(dir, "missing"), "--dir:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateDir(tt.dir)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateDir(%q) = %v, want nil", tt.dir, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validateDir(%q) = %v, want containing %q", tt.dir, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDir_MissingIsNotExist(t *testing.T) {
	t.Parallel()
	err := validateDir(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("validateDir(missing) = %v, want fs.ErrNotExist", err)
	}
}

func TestRequireTerminal_File(t *testing.T) {
	t.Parallel()
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := requireTerminal(f); err == nil {
		t.Error("requireTerminal(regular file) = nil, want error")
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"deploy"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Execute(deploy) = %v, want unknown command error", err)
	}
}

func TestRootCmd_VerboseQuietExclusive(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--verbose", "--quiet"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { verbose, quiet = false, false })

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "[verbose quiet]") {
		t.Errorf("Execute(--verbose --quiet) = %v, want flag group error", err)
	}
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(--version) = %v", err)
	}
	if got := out.String(); !strings.HasPrefix(got, "runmenu dev (none, unknown, go") {
		t.Errorf("version output = %q", got)
	}
}
