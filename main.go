package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sortlab/sortbench/cmd"
)

func main() {
	// Default to pretty console logger; the run command switches to JSON
	// when asked to
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}
