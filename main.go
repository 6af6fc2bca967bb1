// main is the entry point for the prism CLI.
package main

import (
	"github.com/oakline/prism/cmd"
	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/iostore"
)

func main() {
	defer iostore.CloseStores()

	if err := cmd.Execute(); err != nil {
		iostore.CloseStores()
		contract.LogFatal("Command failed", err)
	}
}
