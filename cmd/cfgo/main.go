package main

import (
	"os"
)

func main() {
	initDisplay()
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
