package main

import (
	"fmt"
	"os"

	"github.com/maxchv/crewplan/internal/cmd"
	"github.com/maxchv/crewplan/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, cmd.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
