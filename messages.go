package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readMessages returns the messages selected by the persistent flags, either
// the single --inputs one or every non blank line of --input-file.
func readMessages() ([][]uint64, error) {
	if inputFile == "" {
		if len(inputs) == 0 {
			return nil, errors.New("no message given, set --inputs or --input-file")
		}
		message := make([]uint64, len(inputs))
		for i, v := range inputs {
			message[i] = uint64(v)
		}
		return [][]uint64{message}, nil
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer file.Close()

	var messages [][]uint64
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		message, err := parseMessage(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", inputFile, line, err)
		}
		messages = append(messages, message)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%s: no message found", inputFile)
	}

	return messages, nil
}

func parseMessage(text string) ([]uint64, error) {
	parts := strings.Split(text, ",")
	message := make([]uint64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		message[i] = v
	}
	return message, nil
}
