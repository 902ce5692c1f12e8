package main

import (
	"os"

	"github.com/smellscan/smellscan/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
