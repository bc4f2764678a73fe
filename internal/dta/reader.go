package dta

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"gamrycli/pkg/contracts/domain"
)

// ReadLines reads an export file into raw lines, decoding the instrument's
// Windows-1252 encoding and stripping line terminators.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return lines, nil
}

// DetectType scans the raw lines for the TAG marker naming the technique
// that produced the file. The second return is false when no supported
// marker is present.
func DetectType(lines []string) (domain.SignalType, bool) {
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[0] != "TAG" {
			continue
		}
		tag := domain.SignalType(strings.TrimSpace(fields[1]))
		if tag.Valid() {
			return tag, true
		}
	}
	return "", false
}
