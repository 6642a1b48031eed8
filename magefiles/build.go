//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles every package in the module.
func (Build) All() error {
	if _, err := executeCmd("go", withArgs("build", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the gallery binary into bin/.
func (Build) Gallery() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/gallery", "./cmd/gallery"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet across the module.
func (Build) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Tidies the module file.
func (Build) Tidy() error {
	return goTidy()
}
