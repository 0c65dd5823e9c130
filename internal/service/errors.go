package service

import (
	"fmt"
	"strings"
)

// Step names for the four aggregation fetches. They tag downstream
// failures so the client can tell which query broke.
const (
	StepFetchFirms          = "fetch_firms"
	StepFetchSustainability = "fetch_sustainability"
	StepFetchRecycling      = "fetch_recycling"
	StepFetchEntrepreneurs  = "fetch_entrepreneurs"
)

// ConfigError reports every required secret that is absent, not just the
// first one found.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}

// StepError wraps a database failure with the aggregation step it
// happened in.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
