package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxBackgroundLines bounds how much of a pattern file is read.
const maxBackgroundLines = 256

// LoadBackground reads a text pattern to tile behind the board.
// Returns nil and no error when path is empty. Blank trailing lines are
// dropped; an all-blank file yields nil.
func LoadBackground(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open background %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(lines) < maxBackgroundLines {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read background %s: %w", path, err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return lines, nil
}
