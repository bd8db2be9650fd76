/*
anima-bake turns transform samples captured from a procedural engine into
animation clips for the host scene.

	anima-bake bake  -config bake.toml -in geo.samples.yaml [-out geo.clip.yaml]
	anima-bake watch -config bake.toml -dir captures
	anima-bake demo  -out orbit.clip.yaml -duration 4
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/anima-bake/engine"
	"github.com/spaghettifunk/anima-bake/engine/assets"
	"github.com/spaghettifunk/anima-bake/engine/config"
	"github.com/spaghettifunk/anima-bake/engine/core"
	"github.com/spaghettifunk/anima-bake/testbed"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <bake|watch|demo> [flags]\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "bake":
		err = runBake(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "demo":
		err = runDemo(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		core.LogFatal("%s", err)
	}
}

func newEngine(configPath string, mutate func(*config.Config)) (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if mutate != nil {
		mutate(cfg)
	}
	appConfig, err := engine.NewApplicationConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	e, err := engine.New(testbed.NewDemoApplication(appConfig))
	if err != nil {
		return nil, nil, err
	}
	if err := e.Initialize(); err != nil {
		return nil, nil, err
	}
	return e, cfg, nil
}

func runBake(args []string) error {
	fs := flag.NewFlagSet("bake", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	in := fs.String("in", "", "sample file to bake")
	out := fs.String("out", "", "clip file to write, next to the input by default")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("bake: -in is required")
	}
	if *out == "" {
		*out = engine.ClipPath(*in)
	}

	e, _, err := newEngine(*configPath, nil)
	if err != nil {
		return err
	}
	defer e.Shutdown()

	_, err = e.BakeToFile(*in, *out)
	return err
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	dir := fs.String("dir", "", "directory to watch, overrides [watch] dir")
	fs.Parse(args)

	e, _, err := newEngine(*configPath, func(cfg *config.Config) {
		if *dir != "" {
			cfg.Watch.Dir = *dir
		}
	})
	if err != nil {
		return err
	}

	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := e.Watch(ctx); err != nil {
		e.Shutdown()
		return err
	}
	return e.Shutdown()
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	out := fs.String("out", "orbit"+assets.ClipExt, "clip file to write")
	duration := fs.Float64("duration", 4, "seconds of motion to record")
	fs.Parse(args)

	e, cfg, err := newEngine(*configPath, nil)
	if err != nil {
		return err
	}
	defer e.Shutdown()

	clip, err := testbed.BakeDemo(e, cfg.Bake.FrameRate, float32(*duration))
	if err != nil {
		return err
	}
	if err := assets.SaveClip(*out, clip); err != nil {
		return err
	}
	core.LogInfo("wrote %s", *out)
	return nil
}
