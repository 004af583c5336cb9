package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-storefront-client/internal/config"
	"github.com/jrsteele09/go-storefront-client/internal/logging"
	"github.com/jrsteele09/go-storefront-client/storefront"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return err
	}
	logging.Setup(c)

	if len(args) == 0 || args[0] == "help" {
		displayAppname(c.GetAppName())
		printUsage(os.Stdout)
		if len(args) == 0 {
			return errUsage
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sf, err := storefront.New(ctx, c)
	if err != nil {
		return err
	}
	defer func() {
		if err := sf.Close(); err != nil {
			log.Warn().Err(err).Msg("closing session storage")
		}
	}()

	if args[0] == "status" {
		displayAppname(c.GetAppName())
	}
	return dispatch(ctx, sf, os.Stdout, args)
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
