// main is the entry point for the nutriscore CLI.
package main

import (
	"github.com/mealpoint/nutriscore/cmd"
	"github.com/mealpoint/nutriscore/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
