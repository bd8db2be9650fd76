//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Bakes the orbiting testbed object into out/orbit.clip.yaml.
func (Run) Demo() error {
	mg.Deps(Build.Binary)
	if err := os.MkdirAll("out", 0o755); err != nil {
		return err
	}
	fmt.Println("Baking demo clip...")
	_, err := executeCmd("bin/anima-bake", withArgs("demo", "-out", "out/orbit.clip.yaml"), withStream())
	return err
}

// Watches the directory in ANIMA_WATCH_DIR, or captures/ by default.
func (Run) Watch() error {
	mg.Deps(Build.Binary)
	dir := os.Getenv("ANIMA_WATCH_DIR")
	if dir == "" {
		dir = "captures"
	}
	_, err := executeCmd("bin/anima-bake", withArgs("watch", "-dir", dir), withStream())
	return err
}
