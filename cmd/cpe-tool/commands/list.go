package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// listEntry is one CPE string read from a list file.
type listEntry struct {
	Line int
	Text string
}

// readCPEList reads a file of CPE strings, one per line. Blank lines
// and lines starting with '#' are skipped.
func readCPEList(path string) ([]listEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var entries []listEntry
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, listEntry{Line: line, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return entries, nil
}
