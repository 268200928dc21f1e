// Package conformance drives an Ethereum-style JSON-RPC endpoint through a
// catalog of black-box checks and asserts on the responses. The node's
// observable behavior, including its exact error strings, is the contract
// under test.
package conformance

import (
	"context"
	"fmt"
	"time"
)

// Check is a single named conformance assertion against the node.
type Check struct {
	// Name identifies the check in results, logs and metrics.
	Name string

	// Desc is a one-line human description.
	Desc string

	// NeedsFunds marks checks that submit transactions. The runner gives
	// each of them an isolated funded account so no two checks ever share a
	// nonce sequence.
	NeedsFunds bool

	// Run performs the check. A nil return means the node conforms.
	Run func(ctx context.Context, env *Env) error
}

// Result is the outcome of one executed check.
type Result struct {
	Check    string
	Err      error
	Duration time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

func (r Result) String() string {
	if r.Err == nil {
		return fmt.Sprintf("%s: ok (%s)", r.Check, r.Duration.Round(time.Millisecond))
	}
	return fmt.Sprintf("%s: FAIL (%s): %v", r.Check, r.Duration.Round(time.Millisecond), r.Err)
}

// Summarize counts passed and failed results.
func Summarize(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
