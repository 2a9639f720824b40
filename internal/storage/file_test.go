package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "chat_history.txt")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	ev1 := Event{Timestamp: time.Unix(1, 0).UTC(), User: "alice", Model: "gemma3:12b", Prompt: "hi", Response: "hello"}
	ev2 := Event{Timestamp: time.Unix(2, 0).UTC(), User: "bob", Model: "mistral", Prompt: "foo", Response: "bar"}
	if err := rec.AppendInteraction(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendInteraction(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0].User != "alice" || events[1].User != "bob" {
		t.Fatalf("order mismatch: %+v", events)
	}
	if events[1].Response != "bar" {
		t.Fatalf("round trip mismatch: %+v", events[1])
	}
}

func TestFileRecorder_CreatesFileWithOneLine(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chat_history.txt")
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("precondition: file exists")
	}
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}
	ev := Event{Timestamp: time.Now().UTC(), User: "alice", Model: "gemma3:12b", Prompt: "q", Response: "a"}
	if err := rec.AppendInteraction(ev); err != nil {
		t.Fatalf("append: %v", err)
	}

	lines := readLines(t, p)
	if len(lines) != 1 {
		t.Fatalf("want exactly 1 line, got %d", len(lines))
	}
	var got Event
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("line is not a self-contained JSON object: %v", err)
	}
	if got.Response != "a" {
		t.Fatalf("response = %q", got.Response)
	}
}

func TestFileRecorder_ConcurrentAppends(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chat_history.txt")

	// Two recorders on the same path stand in for two simultaneous
	// invocations of the tool.
	recA, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init a: %v", err)
	}
	recB, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init b: %v", err)
	}

	const perWriter = 50
	var wg sync.WaitGroup
	for _, rec := range []*FileRecorder{recA, recB} {
		wg.Add(1)
		go func(r *FileRecorder) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				ev := Event{Timestamp: time.Now().UTC(), User: "u", Model: "m", Prompt: "p", Response: "r"}
				if err := r.AppendInteraction(ev); err != nil {
					t.Errorf("append: %v", err)
					return
				}
			}
		}(rec)
	}
	wg.Wait()

	lines := readLines(t, p)
	if len(lines) != 2*perWriter {
		t.Fatalf("want %d lines, got %d", 2*perWriter, len(lines))
	}
	for i, line := range lines {
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("line %d malformed: %v", i, err)
		}
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return lines
}
