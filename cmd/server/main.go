package main

import (
	"fmt"
	"os"

	"biztime-backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "biztime:", err)
		os.Exit(1)
	}
}
