package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseFileRoutesRowsByTable(t *testing.T) {
	path := writeExport(t, "export.jsonl", `
{"table":"profiles","identifier":"555","name":"Ada","calorie_goal":2200}
{"table":"meals","identifier":"555","title":"Oats","calories":450,"protein":"18.5"}
{"table":"steps","identifier":"555","count":7500}
`)

	res := ParseFile(path)
	if res.Err != nil {
		t.Fatalf("ParseFile: %v", res.Err)
	}
	if res.ParseErrors != 0 {
		t.Fatalf("ParseErrors = %d, want 0", res.ParseErrors)
	}
	if len(res.Records) != 3 {
		t.Fatalf("parsed %d records, want 3", len(res.Records))
	}

	if res.Records[0].Table != "profiles" {
		t.Errorf("first record table = %q", res.Records[0].Table)
	}
	if _, hasTable := res.Records[0].Row["table"]; hasTable {
		t.Error("routing field should be stripped from the row")
	}

	meal := res.Records[1].Row
	if got := meal.Numeric("calories"); got != 450 {
		t.Errorf("calories = %v, want 450", got)
	}
	if got := meal.Numeric("protein"); got != 18.5 {
		t.Errorf("string-encoded protein = %v, want 18.5", got)
	}
}

func TestParseFileCountsBadLines(t *testing.T) {
	path := writeExport(t, "export.jsonl", `
{"table":"meals","identifier":"555","calories":450}
not json at all
{"table":"unknown_table","identifier":"555"}
{"identifier":"555","calories":1}
`)

	res := ParseFile(path)
	if res.Err != nil {
		t.Fatalf("ParseFile: %v", res.Err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("parsed %d records, want 1", len(res.Records))
	}
	if res.ParseErrors != 3 {
		t.Errorf("ParseErrors = %d, want 3", res.ParseErrors)
	}
}

func TestDiscoverDirectoryFindsExports(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jsonl", "a.jsonl", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2", len(files))
	}
	if filepath.Base(files[0]) != "a.jsonl" || filepath.Base(files[1]) != "b.jsonl" {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestDiscoverSingleFile(t *testing.T) {
	path := writeExport(t, "one.jsonl", "{}\n")
	files, err := Discover(path)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("files = %v, want [%s]", files, path)
	}
}
