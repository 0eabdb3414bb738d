// Command gaes encrypts and decrypts files with AES.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/idelchi/gaes/internal/commands"
	"github.com/idelchi/gaes/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		os.Exit(1)
	}
}
