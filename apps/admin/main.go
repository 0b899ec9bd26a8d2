package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/layout"
)

func main() {
	logger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	translator := core.NewTranslator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// start CLI
	cli := commandLine{
		conf: conf,
		svc: layout.NewService(layout.ServiceDeps{
			Resolver: layout.NewResolver(nil, &layout.Branding{
				LogoURL:  conf.Branding.LogoURL,
				Name:     conf.Branding.Name,
				Subtitle: conf.Branding.Subtitle,
			}),
			Translator: translator,
		}),
		in:    os.Stdin,
		out:   os.Stdout,
		outFd: int(os.Stdout.Fd()),
	}
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		stop()
		os.Exit(1)
	}
}
