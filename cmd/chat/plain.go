package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/edgard/deliverybot/internal/responder"
)

// runPlain answers every input line with one reply line until r is exhausted.
func runPlain(r io.Reader, w io.Writer, resp *responder.Responder) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, resp.Respond(scanner.Text())); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
