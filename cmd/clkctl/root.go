package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/drivers/sf32lb52/sim"
	"clocktree-go/trace"
	"clocktree-go/x/timex"
)

// Environment defaults, optionally loaded from .env.
const (
	envBackend = "CLKCTL_BACKEND"
	envRecord  = "CLKCTL_RECORD"
	envListen  = "CLKCTL_LISTEN"
	envDevMem  = "CLKCTL_DEVMEM"

	defaultDevMem = "/dev/mem"
)

type options struct {
	backend string
	devmem  string
	record  string
	verbose bool
}

// session is one opened backend with its controller.
type session struct {
	hw    regs.File
	ctl   *rcc.Controller
	rec   *trace.Recorder
	sink  *trace.SQLiteWriter
	close func() error
}

func (s *session) Close() error {
	var err error
	if s.sink != nil {
		err = s.sink.Close()
	}
	if s.close != nil {
		if cerr := s.close(); err == nil {
			err = cerr
		}
	}
	return err
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "clkctl",
		Short: "Inspect and reconfigure the SF32LB52x clock tree.",
		Long: `clkctl reads the HPSYS clock registers, derives every clock frequency and applies
partial clock requests with the DVFS voltage sequencing each change needs.

Backends: "sim" (behavioural model, fresh per run) and "devmem" (/dev/mem mapping).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !cmd.Flags().Changed("backend") {
				opts.backend = envOr(envBackend, opts.backend)
			}
			if !cmd.Flags().Changed("record") {
				opts.record = envOr(envRecord, opts.record)
			}
			if !cmd.Flags().Changed("devmem") {
				opts.devmem = envOr(envDevMem, opts.devmem)
			}
		},
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	root.PersistentFlags().StringVar(&opts.backend, "backend", "sim", `register backend: "sim" or "devmem" (env `+envBackend+`)`)
	root.PersistentFlags().StringVar(&opts.devmem, "devmem", defaultDevMem, "memory device for the devmem backend (env "+envDevMem+")")
	root.PersistentFlags().StringVar(&opts.record, "record", "", "journal register writes to this SQLite file (env "+envRecord+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every sequencing step to stderr")

	root.AddCommand(
		newDumpCmd(opts),
		newApplyCmd(opts),
		newModeCmd(opts),
		newPeriphCmd(opts),
		newServeCmd(opts),
	)
	return root
}

func (o *options) open(cmd *cobra.Command) (*session, error) {
	s := &session{}
	switch o.backend {
	case "sim":
		s.hw = sim.New()
	case "devmem":
		hw, closeFn, err := openDevMem(o.devmem)
		if err != nil {
			return nil, err
		}
		s.hw, s.close = hw, closeFn
	default:
		return nil, fmt.Errorf("unknown backend %q", o.backend)
	}

	f := s.hw
	var delay timex.Delayer = timex.SpinDelayer{}
	if o.record != "" {
		sink, err := trace.NewSQLiteWriter(o.record)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open journal: %w", err)
		}
		s.sink = sink
		s.rec = trace.NewRecorder(s.hw, delay)
		s.rec.AddSink(sink)
		f, delay = s.rec, s.rec
	}

	logw := io.Discard
	if o.verbose {
		logw = cmd.ErrOrStderr()
	}
	s.ctl = rcc.New(f, rcc.Options{
		Delay: delay,
		Log:   func(line string) { fmt.Fprintln(logw, line) },
	})
	return s, nil
}

// withSession opens the backend, runs fn and closes the backend.
func (o *options) withSession(cmd *cobra.Command, fn func(*session) error) error {
	s, err := o.open(cmd)
	if err != nil {
		return err
	}
	err = fn(s)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}
