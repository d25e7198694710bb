package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/sghaida/oopqa/di"
	"github.com/sghaida/oopqa/interview"
)

// Dependency keys recorded on the Program's service.
const (
	KeyOutput   di.DependencyKey = "output"
	KeyLogger   di.DependencyKey = "logger"
	KeyRoutines di.DependencyKey = "routines"
)

// Program runs the interview routines and then writes the completion line.
//
// Wiring is explicit: construct with New and pass dependencies as Options.
type Program struct {
	cfg      Config
	out      io.Writer
	log      zerolog.Logger
	routines []interview.Routine
}

// Option wires one dependency into a Program.
type Option = di.Injector[Program]

// WithOutput sets the writer that receives the completion line.
//
// A nil writer fails with di.NilDependencyServiceError keyed KeyOutput.
func WithOutput(w io.Writer) Option {
	var dep *di.Service[io.Writer]
	if w != nil {
		dep = di.Init(func() *io.Writer { return &w })
	}
	return di.Injecting(KeyOutput, dep, func(p *Program, dst *io.Writer) { p.out = *dst })
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	dep := di.Init(func() *zerolog.Logger { return &l })
	return di.Injecting(KeyLogger, dep, func(p *Program, l *zerolog.Logger) { p.log = *l })
}

// WithRoutines replaces the default routines (interview.Routines()).
//
// Passing no routines is allowed; the Program then only prints.
func WithRoutines(rs ...interview.Routine) Option {
	dep := di.Init(func() *[]interview.Routine {
		cp := append([]interview.Routine(nil), rs...)
		return &cp
	})
	return di.Injecting(KeyRoutines, dep, func(p *Program, rs *[]interview.Routine) { p.routines = *rs })
}

// Wire builds the Program's service from cfg and the given options.
//
// Options are applied in order; nil options are skipped and the first failing
// option stops wiring. Wiring the same key twice fails with
// di.DuplicateKeyError. An output writer is required.
func Wire(cfg Config, opts ...Option) (*di.Service[Program], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	svc := di.Init(func() *Program {
		return &Program{
			cfg:      cfg,
			log:      zerolog.Nop(),
			routines: interview.Routines(),
		}
	})
	if _, err := svc.WithAll(opts...); err != nil {
		return nil, err
	}
	if !svc.Has(KeyOutput) {
		return nil, ErrNilOutput
	}
	return svc, nil
}

// New is Wire without the dependency bag.
func New(cfg Config, opts ...Option) (*Program, error) {
	svc, err := Wire(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return svc.Value(), nil
}

// Run invokes every routine in order and then writes the completion line in a
// single write.
//
// Routines without a body are skipped. Run is safe to call repeatedly; each
// call produces the same output.
func (p *Program) Run() error {
	for i, r := range p.routines {
		if r.Run == nil {
			p.log.Debug().Int("index", i).Str("routine", r.ID).Msg("skipping routine without body")
			continue
		}
		r.Run()
		p.log.Debug().Str("routine", r.ID).Str("question", r.Question).Msg("routine done")
	}

	line := []byte(p.cfg.Message + "\n")
	n, err := p.out.Write(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Written: n, Err: err}
	}
	p.log.Debug().Int("bytes", n).Msg("completion line written")
	return nil
}
