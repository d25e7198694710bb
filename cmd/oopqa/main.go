package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sghaida/oopqa/app"
	"github.com/sghaida/oopqa/interview"
	"github.com/sghaida/oopqa/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the composition root. It exists separately from main so tests can
// drive it without os.Exit.
//
// Logging is disabled: the command has no way to turn it on, and stderr must
// stay untouched. The exit code is always 0.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithLevel(args, stdout, stderr, zerolog.Disabled)
}

func runWithLevel(args []string, stdout, stderr io.Writer, level zerolog.Level) int {
	log := logging.New(stderr, level)

	root := newRootCmd(log, len(args), func() (*app.Program, error) {
		return app.New(app.DefaultConfig(),
			app.WithOutput(stdout),
			app.WithLogger(log),
			app.WithRoutines(interview.Routines()...),
		)
	})
	root.SetOut(stdout)
	root.SetErr(stderr)
	// Arguments are counted, never interpreted.
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
	}
	return 0
}

func newRootCmd(log zerolog.Logger, argc int, build func() (*app.Program, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "oopqa",
		Short: "Run the OOP interview notes and print Done",
		Long: "oopqa walks through a set of object-oriented interview questions whose answers\n" +
			"live as notes in the source, then prints a single completion line.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(*cobra.Command, []string) error {
			log.Debug().Int("ignored_args", argc).Msg("starting")

			p, err := build()
			if err != nil {
				return err
			}
			return p.Run()
		},
	}
}
