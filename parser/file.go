package parser

import (
	"bufio"
	"io"
	"os"
)

// ReadLines reads path's contents as a sequence of raw source lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is a user-supplied CLI argument
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLinesFrom(f)
}

// ReadLinesFrom reads raw source lines from an already-open reader.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
