package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-staticify"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// Renderer overrides the body renderer chosen by configuration.
	// Nil in production.
	Renderer staticify.BodyRenderer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
