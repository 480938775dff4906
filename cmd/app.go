package main

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
)

func main() {
	root := appmode.NewRootCommand(os.Stdout, os.Stderr, os.LookupEnv)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minigrep: %v\n", err)
		os.Exit(1)
	}
}
