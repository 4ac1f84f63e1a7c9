// trim-margin removes source-code indentation from margin-delimited text.
//
// The render cache uses github.com/mattn/go-sqlite3, so building needs cgo:
//
//	CGO_ENABLED=1 go build -o trim-margin ./cmd/trim-margin
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
