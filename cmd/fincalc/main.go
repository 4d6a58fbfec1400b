package main

import (
	"os"

	"github.com/moneyforge/fincalc/cmd/fincalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
