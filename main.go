package main

import (
	"os"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
