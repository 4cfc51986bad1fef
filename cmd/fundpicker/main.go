package main

import (
	"os"

	"FundPicker/cmd/fundpicker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
