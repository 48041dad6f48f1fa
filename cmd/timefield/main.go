package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/stigoleg/timefield/internal/cli"
	"github.com/stigoleg/timefield/internal/config"
)

const appVersion = "1.0.0"

func main() {
	cmd := cli.NewRootCmd(appVersion)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, cli.ErrAborted) {
			fmt.Fprintln(os.Stderr, config.FormatError(err))
		}
		os.Exit(1)
	}
}
