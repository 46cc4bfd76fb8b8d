package discover

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("# spec\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFilesFindsSpecs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "spec/models/user_spec.rb")
	writeFile(t, dir, "spec/requests/sessions_spec.rb")
	writeFile(t, dir, "spec/spec_helper.rb")
	writeFile(t, dir, "app/models/user.rb")
	writeFile(t, dir, "README.md")

	got, err := Files(dir, nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	want := []string{
		filepath.Join("spec", "models", "user_spec.rb"),
		filepath.Join("spec", "requests", "sessions_spec.rb"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Files = %v, want %v", got, want)
	}
}

func TestFilesSkipsDirs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "spec/a_spec.rb")
	writeFile(t, dir, "vendor/bundle/gems/rails/spec/b_spec.rb")
	writeFile(t, dir, "tmp/c_spec.rb")
	writeFile(t, dir, ".hidden/d_spec.rb")

	got, err := Files(dir, nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(got) != 1 || got[0] != filepath.Join("spec", "a_spec.rb") {
		t.Errorf("Files = %v", got)
	}
}

func TestFilesHonorsGitignore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "spec/a_spec.rb")
	writeFile(t, dir, "generated/g_spec.rb")
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("generated/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Files(dir, nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(got) != 1 || got[0] != filepath.Join("spec", "a_spec.rb") {
		t.Errorf("Files = %v", got)
	}
}

func TestFilesExcludeGlobs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "spec/models/user_spec.rb")
	writeFile(t, dir, "spec/fixtures/deep/old_spec.rb")

	got, err := Files(dir, []string{"spec/fixtures/**"})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(got) != 1 || got[0] != filepath.Join("spec", "models", "user_spec.rb") {
		t.Errorf("Files = %v", got)
	}
}

func TestFilesEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "lib/thing.rb")

	got, err := Files(dir, nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Files = %v, want none", got)
	}
}
