package vcs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"demoodle/internal/testutil"
)

// TestDiscoverRepoRoot verifies the root is read from git rev-parse.
func TestDiscoverRepoRoot(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := filepath.Join(t.TempDir(), "course")
	subdir := filepath.Join(root, "exams", "2024")

	fake := &fakeGitRunner{responses: map[string]string{
		"rev-parse --show-toplevel": root,
	}}
	client := NewClient(fake)

	actual, err := client.DiscoverRepoRoot(ctx, subdir)
	if err != nil {
		t.Fatalf("discover repo root: %v", err)
	}
	if actual != root {
		t.Fatalf("expected root %q, got %q", root, actual)
	}
	if fake.lastDir != subdir {
		t.Fatalf("expected git to run in %q, got %q", subdir, fake.lastDir)
	}
}

// TestDiscoverRepoRootOutsideRepo verifies git failures surface as errors.
func TestDiscoverRepoRootOutsideRepo(t *testing.T) {
	ctx := testutil.Context(t, 0)
	client := NewClient(&fakeGitRunner{responses: map[string]string{}})

	if _, err := client.DiscoverRepoRoot(ctx, t.TempDir()); err == nil {
		t.Fatalf("expected error outside a repository")
	}
}

// fakeGitRunner returns canned outputs for git commands in tests.
type fakeGitRunner struct {
	responses map[string]string
	lastDir   string
}

// Run satisfies gitRunner for test doubles.
func (f *fakeGitRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.lastDir = dir
	key := strings.Join(args, " ")
	if value, ok := f.responses[key]; ok {
		return value, nil
	}
	return "", fmt.Errorf("not a git repository: %s", key)
}
