package main

import (
	"os"

	"github.com/klauskaan/C-AL-Language-sub012/cmd/cal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
