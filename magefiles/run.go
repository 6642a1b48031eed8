//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Generates the example scene into out/.
func (Run) Gallery() error {
	fmt.Println("Run gallery...")
	if _, err := executeCmd("go", withArgs("run", "./cmd/gallery", "-scene", "cmd/gallery/testdata/scene.toml", "-out", "out"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the full test suite.
func (Run) Tests() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
