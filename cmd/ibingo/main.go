package main

import (
	"os"

	"github.com/bnema/icebreaker-bingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
