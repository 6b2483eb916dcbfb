package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifegrid/src/config"
	"lifegrid/src/host"
	"lifegrid/src/universe"
	"lifegrid/src/view"
)

func main() {
	eo, cfg := initOptions()

	u := universe.NewWithOptions(universe.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Workers: cfg.Workers,
	})
	if cfg.Pattern {
		u.GeneratePattern()
	}
	if cfg.Template != "" {
		if err := u.SettleTemplate(cfg.Template, u.Height()/2, u.Width()/2); err != nil {
			log.Fatalf("%+v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := host.New(u, host.Options{Interval: cfg.Interval, MaxSteps: cfg.MaxSteps})

	if cfg.Interactive {
		v := view.NewViewTerminal(c)
		c.RegisterViewer(v)
		c.SetAlerter(v)
		c.Start(ctx)
		if eo.name != "" {
			c.Greet(eo.name)
		}
		v.Start()
		c.Close()
		return
	}

	out := view.NewConsoleOut(os.Stdout, cfg.PrintEvery, eo.grid, !eo.noColors)
	out.Register(u.Options(), cfg.Interval, cfg.MaxSteps)
	c.RegisterViewer(out)
	c.SetAlerter(alertFunc(func(msg string) { fmt.Println(msg) }))
	if eo.name != "" {
		c.Greet(eo.name)
	}
	fmt.Printf("\"The Life\" game simulation started...\n")
	//the loop outlives the signal so the final frame can still be read
	c.Start(context.Background())
	if err := c.ToggleRun(); err != nil {
		log.Fatalf("%+v", err)
	}
	select {
	case <-c.Finished():
	case <-ctx.Done():
		fmt.Println("\nInterrupted")
	}
	f, err := c.Snapshot()
	c.Close()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	out.Finish(f)
}

type alertFunc func(msg string)

func (f alertFunc) Alert(msg string) { f(msg) }

func initOptions() (eo *EnvOptions, cfg config.Config) {
	eo = newEnvOptions()
	p := newParser(eo)
	if err := p.ParseArgs(os.Args[1:]); err != nil {
		p.ShowHelpAndExit(err.Error())
	}

	cfg, err := eo.config()
	if err != nil {
		p.ShowHelpAndExit(err.Error())
	}
	return eo, cfg
}
