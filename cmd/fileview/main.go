// Package main provides the fileview command: an HTTP directory browser
// and one-shot commands that run the same operations locally.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
