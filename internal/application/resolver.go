package application

import (
	"context"

	"github.com/apexworks/pitwall/internal/domain"
	"github.com/apexworks/pitwall/internal/ports"
)

// SourceMode identifies which backing origin currently supplies session data.
type SourceMode string

const (
	ModeDetecting SourceMode = "detecting"
	ModeRemote    SourceMode = "remote"
	ModeDemo      SourceMode = "demo"
	ModeArchive   SourceMode = "archive"
)

// probeOutcome is the result of one detection attempt.
type probeOutcome int

const (
	outcomeRemoteOK probeOutcome = iota
	outcomeRemoteFailed
	outcomeDemoOK
	outcomeDemoFailed
)

// transition is the resolver's pure state-transition function. Only
// ModeDetecting reacts to outcomes; the settled modes are terminal.
func transition(mode SourceMode, outcome probeOutcome) SourceMode {
	if mode != ModeDetecting {
		return mode
	}

	switch outcome {
	case outcomeRemoteOK:
		return ModeRemote
	case outcomeRemoteFailed:
		return ModeDetecting
	case outcomeDemoOK:
		return ModeDemo
	case outcomeDemoFailed:
		return ModeArchive
	}
	return mode
}

// ResolverOptions are the deployment-time switches: skip the remote probe,
// or start directly in archive mode awaiting an upload.
type ResolverOptions struct {
	SkipRemote   bool
	ForceArchive bool
}

// Resolver runs the source-detection chain once at startup:
// remote, then the demo bundle, then empty archive mode. Probe failures are
// recovered by falling through, never surfaced.
type Resolver struct {
	remote ports.SessionSource
	demo   ports.SessionSource
	opts   ResolverOptions
}

func NewResolver(remote, demo ports.SessionSource, opts ResolverOptions) *Resolver {
	return &Resolver{remote: remote, demo: demo, opts: opts}
}

// Resolution is the settled result of running the chain.
type Resolution struct {
	Mode      SourceMode
	Summaries []domain.SessionSummary
	Source    ports.SessionSource
}

// Resolve walks the detection chain to a terminal mode. It never fails: the
// worst case is archive mode with an empty summary list.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	if r.opts.ForceArchive {
		return Resolution{Mode: ModeArchive}
	}

	mode := ModeDetecting

	if !r.opts.SkipRemote && r.remote != nil {
		summaries, err := r.remote.List(ctx)
		if err == nil {
			mode = transition(mode, outcomeRemoteOK)
			return Resolution{Mode: mode, Summaries: summaries, Source: r.remote}
		}
		mode = transition(mode, outcomeRemoteFailed)
	}

	if r.demo != nil {
		summaries, err := r.demo.List(ctx)
		if err == nil {
			mode = transition(mode, outcomeDemoOK)
			return Resolution{Mode: mode, Summaries: summaries, Source: r.demo}
		}
	}
	mode = transition(mode, outcomeDemoFailed)

	return Resolution{Mode: mode}
}
