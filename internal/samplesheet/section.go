package samplesheet

import (
	"fmt"
	"os"
	"strings"
)

// CloudDataSection is the manifest section mapping samples to projects.
const CloudDataSection = "Cloud_Data"

// Section is one bracketed block of a manifest: the first content line as
// header and every later non-blank line as a row.
type Section struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Sample is a Cloud_Data row reduced to the two columns the fan-out uses.
type Sample struct {
	ID      string
	Project string
}

// ReadLines reads a manifest fully into memory. Each line keeps its
// original terminator so callers can write lines back unchanged.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text after every '\n', keeping the terminator.
// A final line without terminator is kept as is.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ExtractSection locates the first line equal to "[name]" after trimming
// and returns everything below it as a section. Content runs to EOF: a
// later section header is read as a data row.
func ExtractSection(lines []string, name string) (*Section, error) {
	marker := "[" + name + "]"
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: [%s]", ErrSectionNotFound, name)
	}

	sec := &Section{Name: name}
	content := lines[start:]
	if len(content) == 0 {
		return sec, nil
	}

	sec.Header = strings.Split(strings.TrimSpace(content[0]), ",")
	for _, line := range content[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		sec.Rows = append(sec.Rows, strings.Split(trimmed, ","))
	}
	return sec, nil
}

// Projects returns the distinct values of column 1 in first-seen order.
// Rows with fewer than two fields are skipped.
func (s *Section) Projects() []string {
	seen := make(map[string]bool)
	var projects []string
	for _, row := range s.Rows {
		if len(row) < 2 {
			continue
		}
		if seen[row[1]] {
			continue
		}
		seen[row[1]] = true
		projects = append(projects, row[1])
	}
	return projects
}

// Samples converts every row into a Sample. Unlike Projects it does not
// skip short rows: the first one found is reported as ErrShortRow.
func (s *Section) Samples() ([]Sample, error) {
	samples := make([]Sample, 0, len(s.Rows))
	for i, row := range s.Rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d %q", ErrShortRow, i+1, strings.Join(row, ","))
		}
		samples = append(samples, Sample{ID: row[0], Project: row[1]})
	}
	return samples, nil
}
