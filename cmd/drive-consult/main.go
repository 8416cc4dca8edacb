package main

import (
	"os"

	"github.com/futig/drive-consult/internal/builder"
	"github.com/futig/drive-consult/internal/cli"
)

func main() {
	root := cli.NewRootCommand(func(environment string, verbose bool) (*cli.Backend, error) {
		svc, err := builder.BuildServices(environment, verbose)
		if err != nil {
			return nil, err
		}

		return &cli.Backend{
			Files:   svc.Files,
			Consult: svc.Consult,
			Logger:  svc.Logger,
			Close:   svc.Close,
		}, nil
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
