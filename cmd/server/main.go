// Package main is the entry point for the escribe server, which renders a
// compose form and asks a text-completion provider to write the requested
// piece.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
