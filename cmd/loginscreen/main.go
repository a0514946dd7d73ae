package main

import (
	"os"

	"loginscreen/cmd/loginscreen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
