// Command prandstream demonstrates that a multi-stream Generator's stream i
// agrees with a single-stream Generator's draw at position i*step,
// mirroring the reference implementation's multistream.c example.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chronoseed/prandgo/internal/prandcli"
	"github.com/chronoseed/prandgo/pkg/prand"
)

func main() {
	cfg := prandcli.ParseFlags()
	prandcli.HandleVersion(cfg.ShowVersion)
	debug := prandcli.NewDebugLogger(cfg.DebugMode)

	backend, err := parseBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	debug.Printf("backend=%s seed=%d nstream=%d step=%d count=%d\n",
		backend, cfg.Seed, cfg.NStream, cfg.Step, cfg.Count)

	if err := run(backend, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseBackend(name string) (prand.Backend, error) {
	switch name {
	case "mrg32k3a":
		return prand.MRG32k3a, nil
	case "mt19937":
		return prand.MT19937, nil
	default:
		return 0, fmt.Errorf("unknown backend %q (want mrg32k3a or mt19937)", name)
	}
}

func run(backend prand.Backend, cfg *prandcli.Config) error {
	single, err := prand.New(backend, cfg.Seed, 1, 0)
	if warnOrFail(err) != nil {
		return err
	}
	defer single.Close()

	fmt.Println("-> single stream:")
	var v float64
	var drawn uint64
	for i := 0; i < cfg.NStream; i++ {
		target := uint64(i) * cfg.Step
		for ; drawn <= target; drawn++ {
			v, err = single.GetDouble(0)
			if err != nil {
				return err
			}
		}
		fmt.Printf("%d-th number: %f\n", target, v)
	}

	multi, err := prand.New(backend, cfg.Seed, cfg.NStream, cfg.Step)
	if warnOrFail(err) != nil {
		return err
	}
	defer multi.Close()

	fmt.Printf("-> %d streams with step size %d:\n", cfg.NStream, cfg.Step)
	for i := 0; i < cfg.NStream; i++ {
		for c := 0; c < cfg.Count; c++ {
			v, err := multi.GetDouble(i)
			if err != nil {
				return err
			}
			fmt.Printf("stream %d, draw %d: %f\n", i, c, v)
		}
	}
	return nil
}

// warnOrFail returns nil for a nil error or an ErrSeedDefaulted warning
// (still printed, but not treated as failure), and err otherwise.
func warnOrFail(err error) error {
	if err == nil {
		return nil
	}
	var code prand.ErrCode
	if errors.As(err, &code) && code.IsWarning() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil
	}
	return err
}
