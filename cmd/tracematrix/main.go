// main is the entry point for the tracematrix CLI.
package main

import (
	"github.com/qafoundry/tracematrix/cmd"
	"github.com/qafoundry/tracematrix/internal/contract"
	"github.com/qafoundry/tracematrix/internal/iohistory"
)

func main() {
	err := cmd.Execute()

	// Close the history store before any fatal exit.
	iohistory.CloseHistory()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
