// Package loader parses comma-separated result logs into a result.Table.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/signalnine/solvecmp/internal/errors"
	"github.com/signalnine/solvecmp/internal/result"
)

// Source describes one result log and how its columns map to tools.
type Source struct {
	Path string
	// Columns maps each result column to a tool. An empty entry drops the column.
	Columns []string
	// Durations means every column is an outcome,duration pair.
	Durations bool
	// Header skips the first non-blank line. With no Columns the header's
	// tool names are used.
	Header bool
}

func (s *Source) fieldCount() int {
	per := 1
	if s.Durations {
		per = 2
	}
	return 1 + per*len(s.Columns)
}

type WarningKind int

const (
	MalformedRecord WarningKind = iota
	DataQuality
)

func (k WarningKind) String() string {
	if k == DataQuality {
		return "data quality"
	}
	return "malformed record"
}

// Warning is a recoverable problem found while loading. The run continues.
type Warning struct {
	Kind      WarningKind
	Source    string
	Line      int
	Benchmark string
	Tool      string
	Message   string
}

func (w Warning) String() string {
	loc := fmt.Sprintf("%s:%d", w.Source, w.Line)
	if w.Tool != "" {
		return fmt.Sprintf("%s: %s: %s [%s]: %s", loc, w.Kind, w.Benchmark, w.Tool, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", loc, w.Kind, w.Message)
}

// Load merges the records of src into table. A missing file is fatal; every
// other problem is returned as a Warning and the offending record or field
// is skipped.
func Load(src Source, table *result.Table) ([]Warning, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, errors.IO(src.Path, err)
	}
	defer f.Close()

	var warnings []Warning
	warn := func(kind WarningKind, line int, bench, tool, format string, args ...interface{}) {
		warnings = append(warnings, Warning{
			Kind:      kind,
			Source:    src.Path,
			Line:      line,
			Benchmark: bench,
			Tool:      tool,
			Message:   fmt.Sprintf(format, args...),
		})
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	headerPending := src.Header
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := splitFields(line)
		if headerPending {
			headerPending = false
			if len(src.Columns) == 0 {
				src.Columns = headerColumns(fields, src.Durations)
			}
			continue
		}
		if want := src.fieldCount(); len(fields) != want {
			warn(MalformedRecord, lineNo, "", "", "expected %d fields, got %d", want, len(fields))
			continue
		}
		id := fields[0]
		if id == "" {
			warn(MalformedRecord, lineNo, "", "", "empty benchmark identifier")
			continue
		}
		b := table.Ensure(id)
		for col, tool := range src.Columns {
			if tool == "" {
				continue
			}
			var outField, durField string
			if src.Durations {
				outField, durField = fields[1+2*col], fields[2+2*col]
			} else {
				outField = fields[1+col]
			}
			if outField != "" {
				o, ok := result.ParseOutcome(outField)
				if !ok {
					warn(MalformedRecord, lineNo, id, tool, "unrecognized outcome %q recorded as %s", outField, result.Unknown)
				}
				if prev, set := b.Outcomes[tool]; set && prev != o {
					warn(DataQuality, lineNo, id, tool, "outcome %s overwritten by %s", prev, o)
				}
				b.Outcomes[tool] = o
			}
			if durField == "" {
				continue
			}
			d, err := strconv.ParseInt(durField, 10, 64)
			if err != nil || d < 0 {
				warn(MalformedRecord, lineNo, id, tool, "invalid duration %q omitted", durField)
				continue
			}
			if prev, set := b.Durations[tool]; set && prev != d {
				warn(DataQuality, lineNo, id, tool, "duration %d overwritten by %d", prev, d)
			}
			b.Durations[tool] = d
		}
	}
	if err := sc.Err(); err != nil {
		return warnings, errors.IO(src.Path, err)
	}
	return warnings, nil
}

// LoadAll loads sources in order into a fresh table.
func LoadAll(sources []Source) (*result.Table, []Warning, error) {
	table := result.NewTable()
	var warnings []Warning
	for _, src := range sources {
		w, err := Load(src, table)
		warnings = append(warnings, w...)
		if err != nil {
			return nil, warnings, err
		}
	}
	return table, warnings, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func headerColumns(fields []string, durations bool) []string {
	rest := fields[1:]
	if !durations {
		return rest
	}
	cols := make([]string, 0, len(rest)/2)
	for i := 0; i+1 < len(rest); i += 2 {
		cols = append(cols, rest[i])
	}
	return cols
}
