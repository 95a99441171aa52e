package main

import (
	"os"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
