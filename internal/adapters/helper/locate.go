package helper

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

const whichTimeout = 5 * time.Second

// Locator finds the helper binary once and remembers the answer.
type Locator struct {
	pinned      string
	searchPaths []string
	runner      ports.CommandRunner

	once sync.Once
	path string
	err  error
}

// NewLocator creates a Locator. A non-empty pinned path is tried first.
func NewLocator(pinned string, searchPaths []string, runner ports.CommandRunner) *Locator {
	return &Locator{
		pinned:      pinned,
		searchPaths: searchPaths,
		runner:      runner,
	}
}

// Locate returns the helper path, or domain.ErrHelperNotFound.
// Discovery runs once; later calls return the first result.
func (l *Locator) Locate() (string, error) {
	l.once.Do(func() {
		l.path, l.err = l.discover()
	})
	return l.path, l.err
}

func (l *Locator) discover() (string, error) {
	for _, candidate := range []string{l.pinned, os.Getenv(domain.HelperPathEnv)} {
		if candidate != "" && exists(candidate) {
			return candidate, nil
		}
	}

	if l.runner != nil {
		ctx, cancel := context.WithTimeout(context.Background(), whichTimeout)
		defer cancel()

		res, err := l.runner.Run(ctx, "which", domain.HelperName)
		if err == nil && res.Success() {
			if p := strings.TrimSpace(res.Stdout); p != "" && exists(p) {
				return p, nil
			}
		}
	}

	for _, p := range l.searchPaths {
		if exists(p) {
			return p, nil
		}
	}

	return "", domain.ErrHelperNotFound
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
