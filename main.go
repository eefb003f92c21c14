package main

import (
	"context"
	"os"

	"github.com/filetug/filepicker/pkg/cli"
	"github.com/spf13/cobra"
)

var osExit = os.Exit

func main() {
	app := newApp()
	run(app)
}

var newApp = func() application {
	return cli.NewRootCmd()
}

type application interface {
	ExecuteContext(ctx context.Context) error
}

var _ application = (*cobra.Command)(nil)

// run exits with 1 on failure; cobra has already printed the error.
var run = func(app application) {
	if err := app.ExecuteContext(context.Background()); err != nil {
		osExit(1)
	}
}
