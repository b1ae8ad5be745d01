// Package source parses JSONL health-record exports for seeding a local
// record store.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	"github.com/vitadash/vitadash/internal/records"
)

// Record is one imported row destined for a store table.
type Record struct {
	Table string
	Row   records.Row
}

// ImportTables lists the table names an export line may target.
var ImportTables = map[string]bool{
	"profiles":  true,
	"weights":   true,
	"meals":     true,
	"workouts":  true,
	"hydration": true,
	"sleep":     true,
	"steps":     true,
}

// ParseResult holds the output of parsing a single export file.
type ParseResult struct {
	Records     []Record
	ParseErrors int
	Err         error
}

// maxLineBytes bounds a single export line.
const maxLineBytes = 1 << 20

// ParseFile reads a JSONL export where each line is one record carrying a
// "table" field naming its destination. Lines that fail to parse or name
// an unknown table are counted, not fatal.
func ParseFile(path string) ParseResult {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	var result ParseResult

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, ok := parseLine(line)
		if !ok {
			result.ParseErrors++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		result.Err = err
	}
	return result
}

// parseLine decodes one export line. Numbers stay json.Number so the
// row keeps the same numeric tolerance as rows read from a store.
func parseLine(line []byte) (Record, bool) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var row records.Row
	if err := dec.Decode(&row); err != nil {
		return Record{}, false
	}

	table, _ := row["table"].(string)
	if !ImportTables[table] {
		return Record{}, false
	}
	delete(row, "table")

	return Record{Table: table, Row: row}, true
}
