package main

import (
	"fmt"
	"os"

	"github.com/modu-ai/monocheck/internal/cli"
)

func main() {
	err := cli.Execute()
	code := cli.ExitCode(err)
	if code == cli.ExitCodeFatal {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
