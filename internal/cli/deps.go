// Package cli provides the Cobra command and dependency wiring for the
// monocheck CLI. This file defines the Dependencies struct (Composition
// Root) that builds the rule set and the checks that use it.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modu-ai/monocheck/internal/config"
	"github.com/modu-ai/monocheck/internal/structure"
)

// Dependencies holds the services used by the root command.
type Dependencies struct {
	Rules     config.Rules
	Validator *structure.Validator
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies wires the default rules and a stderr logger. The report
// goes to stdout, so logging never mixes with it.
func InitDependencies() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	d, err := NewDependencies(config.DefaultRules(), logger)
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// NewDependencies validates rules and builds the checks around them.
// A nil logger discards output.
func NewDependencies(rules config.Rules, logger *slog.Logger) (*Dependencies, error) {
	if err := config.Validate(rules); err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dependencies{
		Rules:     rules,
		Validator: structure.NewValidator(rules, logger),
		Logger:    logger,
	}, nil
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
