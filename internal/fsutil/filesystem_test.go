package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_RoundTrip(t *testing.T) {
	osfs := OSFileSystem{}
	path := filepath.Join(t.TempDir(), "nodes.txt")

	if osfs.Exists(path) {
		t.Fatal("expected file to not exist yet")
	}

	w, err := osfs.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := io.WriteString(w, "190001 1 2\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := osfs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "190001 1 2\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestMemoryFileSystem_CreateAndOpen(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/out/links.csv")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !mfs.Exists("/out/links.csv") {
		t.Error("expected created file to exist before close")
	}
	w.Write([]byte("a,b\n"))
	w.Write([]byte("c,d\n"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := mfs.Open("/out/../out/links.csv")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "a,b\nc,d\n" {
		t.Errorf("unexpected content %q", data)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Name() != "links.csv" || info.Size() != 8 {
		t.Errorf("unexpected info %s/%d", info.Name(), info.Size())
	}
}

func TestMemoryFileSystem_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if _, err := mfs.Open("/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := mfs.ReadFile("/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMemoryFileSystem_ReadFileCopies(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.WriteFile("/x", []byte("abc"), 0644)

	data, _ := mfs.ReadFile("/x")
	data[0] = 'z'

	again, _ := mfs.ReadFile("/x")
	if string(again) != "abc" {
		t.Errorf("ReadFile should return a copy, got %q", again)
	}
}
