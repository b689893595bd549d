// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package losslog reads per-epoch values, such as a loss trace, from the
// log files written by training loops: comma or tab separated tables
// with a header row, JSON lines, or plain text with one record per line.
package losslog

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
)

var (
	// ErrNoColumn is returned when the requested column does not exist.
	ErrNoColumn = errors.New("losslog: no such column")

	// ErrNotFinite is returned for NaN or infinite values.
	ErrNotFinite = errors.New("losslog: value is not finite")
)

// DefaultColumn is the column read when none is given.
const DefaultColumn = "loss"

// Formats are the supported log formats.
type Formats int32

const (
	// Text has one record per line with whitespace separated fields;
	// blank lines and lines starting with # are skipped.
	Text Formats = iota

	// CSV is comma separated with a header row.
	CSV

	// TSV is tab separated with a header row.
	TSV

	// JSONL has one JSON object (or bare number) per line.
	JSONL
)

func (f Formats) String() string {
	switch f {
	case Text:
		return "text"
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case JSONL:
		return "jsonl"
	}
	return fmt.Sprintf("Formats(%d)", f)
}

// ExtToFormat returns the format for a filename extension,
// which can start with a . or not. Unknown extensions are Text.
func ExtToFormat(ext string) Formats {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "csv":
		return CSV
	case "tsv", "tab":
		return TSV
	case "jsonl", "ndjson", "json":
		return JSONL
	}
	return Text
}

// Open reads one column from the given log file, with the format
// inferred from the extension.
func Open(filename, column string) ([]float64, error) {
	cols, err := OpenColumns(filename, column)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// OpenColumns reads the given columns from the given log file.
func OpenColumns(filename string, columns ...string) ([][]float64, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadColumns(bufio.NewReader(f), ExtToFormat(filepath.Ext(fn)), columns...)
}

// Read reads one column of values from r.
func Read(r io.Reader, format Formats, column string) ([]float64, error) {
	cols, err := ReadColumns(r, format, column)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ReadColumns reads the given columns of values from r. A column is
// a header name (or JSON key), or a zero based field index. An empty
// column name means [DefaultColumn] for tables and JSON, and the first
// field for text. With no columns, the default column is read.
func ReadColumns(r io.Reader, format Formats, columns ...string) ([][]float64, error) {
	if len(columns) == 0 {
		columns = []string{""}
	}
	switch format {
	case CSV, TSV:
		return readTable(r, format, columns)
	case JSONL:
		return readJSONL(r, columns)
	}
	return readText(r, columns)
}

func parseValue(s string, line int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("losslog: line %d: %w", line, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: line %d: %q", ErrNotFinite, line, s)
	}
	return v, nil
}

func readTable(r io.Reader, format Formats, columns []string) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	if format == TSV {
		cr.Comma = '\t'
	}
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("losslog: reading header: %w", err)
	}
	idx := make([]int, len(columns))
	for i, col := range columns {
		idx[i], err = columnIndex(header, col)
		if err != nil {
			return nil, err
		}
	}
	out := make([][]float64, len(columns))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("losslog: %w", err)
		}
		for i, ci := range idx {
			if ci >= len(rec) {
				return nil, fmt.Errorf("%w: line %d has %d fields", ErrNoColumn, line, len(rec))
			}
			v, err := parseValue(rec[ci], line)
			if err != nil {
				return nil, err
			}
			out[i] = append(out[i], v)
		}
	}
	return out, nil
}

// columnIndex finds the column by header name, falling back to a
// numeric index.
func columnIndex(header []string, col string) (int, error) {
	if col == "" {
		col = DefaultColumn
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), col) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(col); err == nil && i >= 0 && i < len(header) {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q (have %s)", ErrNoColumn, col, strings.Join(header, ", "))
}

func readJSONL(r io.Reader, columns []string) ([][]float64, error) {
	out := make([][]float64, len(columns))
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		txt := strings.TrimSpace(sc.Text())
		if txt == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(txt), &rec); err != nil {
			if len(columns) == 1 {
				v, perr := parseValue(txt, line)
				if perr == nil {
					out[0] = append(out[0], v)
					continue
				}
			}
			return nil, fmt.Errorf("losslog: line %d: %w", line, err)
		}
		for i, col := range columns {
			if col == "" {
				col = DefaultColumn
			}
			raw, ok := rec[col]
			if !ok {
				return nil, fmt.Errorf("%w: %q on line %d", ErrNoColumn, col, line)
			}
			var v float64
			switch x := raw.(type) {
			case float64:
				v = x
			case string:
				pv, err := parseValue(x, line)
				if err != nil {
					return nil, err
				}
				v = pv
			default:
				return nil, fmt.Errorf("losslog: line %d: %q is not a number", line, col)
			}
			out[i] = append(out[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func readText(r io.Reader, columns []string) ([][]float64, error) {
	idx := make([]int, len(columns))
	for i, col := range columns {
		if col == "" || col == DefaultColumn {
			continue
		}
		n, err := strconv.Atoi(col)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: text logs take field indexes, not %q", ErrNoColumn, col)
		}
		idx[i] = n
	}
	out := make([][]float64, len(columns))
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		txt := strings.TrimSpace(sc.Text())
		if txt == "" || strings.HasPrefix(txt, "#") {
			continue
		}
		fields := strings.Fields(txt)
		for i, fi := range idx {
			if fi >= len(fields) {
				return nil, fmt.Errorf("%w: line %d has %d fields", ErrNoColumn, line, len(fields))
			}
			v, err := parseValue(fields[fi], line)
			if err != nil {
				return nil, err
			}
			out[i] = append(out[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
