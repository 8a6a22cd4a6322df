package main

import (
	"accountd/cmd"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := cmd.Migrate(os.Args[2:]); err != nil {
			fmt.Printf("migration failed: %s", err)
			os.Exit(1)
		}
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
