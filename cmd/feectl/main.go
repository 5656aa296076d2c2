package main

import (
	"fmt"
	"os"

	"github.com/cyphera/cyphera-fees/internal/logger"
)

func main() {
	err := rootCommand().Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
