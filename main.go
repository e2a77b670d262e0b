package main

import (
	"os"

	"github.com/scan-io-git/envlint/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
