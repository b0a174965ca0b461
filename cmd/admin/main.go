// Command admin manages the service directory catalog from a terminal.
package main

import (
	"context"
	"os"
)

func main() {
	s := newSession(os.Stdin, os.Stdout, os.Stderr)
	if err := run(context.Background(), s, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
