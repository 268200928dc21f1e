package utils

import (
	"fmt"

	"go.uber.org/zap"
)

// NewSugaredLogger creates the suite's sugared logger. Verbose runs get a
// human-readable development logger for debugging single checks; otherwise
// output is production JSON for CI log collection.
func NewSugaredLogger(verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create development logger: %w", err)
		}
		return l.Sugar(), nil
	}

	l, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create production logger: %w", err)
	}
	return l.Sugar(), nil
}
