package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr %q", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "spinsquare ") {
		t.Fatalf("unexpected version line %q", stdout.String())
	}
}

func TestRunHeadlessWritesLogAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")
	pngPath := filepath.Join(dir, "frame.png")

	var stdout, stderr bytes.Buffer
	args := []string{"-headless", "-hz", "1000", "-ticks", "3", "-size", "64", "-log", logPath, "-snapshot", pngPath}
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr %q", code, stderr.String())
	}

	// The log file is closed by run; its contents are complete.
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "spinning-square: start") {
		t.Fatalf("log missing start line: %q", b)
	}
	if stdout.Len() != 0 {
		t.Fatalf("log leaked to stdout: %q", stdout.String())
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
}

func TestRunBadLogPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	bad := filepath.Join(t.TempDir(), "missing", "run.log")
	if code := run([]string{"-headless", "-ticks", "1", "-log", bad}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if stderr.Len() == 0 {
		t.Fatal("expected error on stderr")
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
