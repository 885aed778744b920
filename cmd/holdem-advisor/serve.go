package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/holdem-advisor/internal/server"
)

type ServeCmd struct {
	Addr string `help:"Listen address (overrides the config file)"`
}

func (c *ServeCmd) Run(rc *runContext) error {
	addr := c.Addr
	if addr == "" {
		addr = rc.cfg.Server.Address
	}
	idle := time.Duration(rc.cfg.Server.IdleTimeout) * time.Second

	srv := server.NewServer(addr, rc.advisor, rc.cfg.DefaultSituation(), idle, rc.logger, quartz.NewReal())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		rc.logger.Info("shutting down", "signal", sig)
		srv.Stop()
		return nil
	}
}
