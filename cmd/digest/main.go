// Command digest generates and verifies Turnpike / Beltway instances.
//
// Usage:
//
//	digest generate  -kind beltway -n 12 [-seed 7] [-problem] [-out inst.yaml]
//	digest verify    -instance inst.yaml -candidate cand.yaml
//	digest distances -kind turnpike -boundary 15 0 1 9 13
//
// Configuration comes from an optional .env file and the environment
// (DIGEST_SEED, DIGEST_EPSILON, DIGEST_WORKERS, DIGEST_LOG_LEVEL); flags win.
//
// Exit status: 0 success / valid, 1 invalid candidate, 2 usage or I/O error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/distgeo/digest"
	"github.com/katalvlaran/distgeo/fixture"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const usage = `usage: digest <command> [flags]

commands:
  generate   sample a random instance and write it as YAML
  verify     check a candidate YAML against an instance YAML
  distances  print the digest of explicit points
`

// errInvalid marks a candidate that does not solve the instance.
var errInvalid = errors.New("candidate does not solve the instance")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, envLoaded, err := loadConfig()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return exitUsage
	}
	logger.Debug("configuration loaded", "env_file", envLoaded, "seed", cfg.Seed,
		"epsilon", cfg.Epsilon, "workers", cfg.Workers)

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	var cmdErr error
	switch args[0] {
	case "generate":
		cmdErr = runGenerate(args[1:], cfg, logger, stdout, stderr)
	case "verify":
		cmdErr = runVerify(args[1:], cfg, logger, stdout, stderr)
	case "distances":
		cmdErr = runDistances(args[1:], cfg, stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}

	switch {
	case cmdErr == nil:
		return exitOK
	case errors.Is(cmdErr, errInvalid):
		return exitInvalid
	case errors.Is(cmdErr, flag.ErrHelp):
		return exitOK
	default:
		logger.Error("command failed", "command", args[0], "error", cmdErr)
		return exitUsage
	}
}

func runGenerate(args []string, cfg config, logger *slog.Logger, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindName := fs.String("kind", "turnpike", "problem kind: turnpike or beltway")
	n := fs.Int("n", 10, "number of points (≥ 2)")
	seed := fs.Int64("seed", cfg.Seed, "RNG seed; 0 picks one from the clock")
	problem := fs.Bool("problem", false, "omit the solution points")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := digest.ParseKind(*kindName)
	if err != nil {
		return err
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	start := time.Now()
	in, err := fixture.NewInstance(kind, *n,
		fixture.WithSeed(*seed),
		fixture.WithDigestOptions(digest.WithWorkers(cfg.Workers)))
	if err != nil {
		return err
	}
	logger.Info("instance generated", "kind", kind, "points", *n, "seed", *seed,
		"boundary", in.Boundary, "distances", len(in.Distances), "elapsed", time.Since(start))

	if *problem {
		in = in.Problem()
	}
	if *out == "" {
		return fixture.Encode(stdout, in)
	}
	if err := fixture.SaveInstance(*out, in); err != nil {
		return err
	}
	logger.Info("instance saved", "path", *out)
	return nil
}

func runVerify(args []string, cfg config, logger *slog.Logger, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	instPath := fs.String("instance", "", "instance YAML file")
	candPath := fs.String("candidate", "", "candidate YAML file")
	eps := fs.Float64("epsilon", cfg.Epsilon, "float tolerance (integer instances are exact)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *instPath == "" || *candPath == "" {
		return errors.New("verify: -instance and -candidate are required")
	}
	if *eps < 0 || math.IsNaN(*eps) || math.IsInf(*eps, 0) {
		return fmt.Errorf("verify: -epsilon must be finite and ≥ 0, got %g", *eps)
	}

	in, err := fixture.LoadInstance(*instPath)
	if err != nil {
		return err
	}
	cand, err := fixture.LoadCandidate(*candPath)
	if err != nil {
		return err
	}

	opts := []digest.Option{digest.WithEpsilon(*eps), digest.WithWorkers(cfg.Workers)}
	ok, err := in.Verify(cand, opts...)
	if err != nil {
		return err
	}
	logger.Debug("verification finished", "kind", in.Kind, "points", len(cand.Points), "valid", ok)
	if ok {
		fmt.Fprintln(stdout, "valid")
		return nil
	}

	fmt.Fprintln(stdout, "invalid")
	if got, err := digest.Rebuild(in.Kind, cand, opts...); err == nil {
		fmt.Fprintf(stdout, "missing:    %v\n", digest.Difference(in.Distances, got, *eps))
		fmt.Fprintf(stdout, "unexpected: %v\n", digest.Difference(got, in.Distances, *eps))
	}
	return errInvalid
}

func runDistances(args []string, cfg config, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("distances", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindName := fs.String("kind", "turnpike", "problem kind: turnpike or beltway")
	boundary := fs.Int64("boundary", 0, "segment length or circumference")
	start := fs.Int("start", -1, "beltway only: walk the circle from this point index")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := digest.ParseKind(*kindName)
	if err != nil {
		return err
	}
	points := make([]int64, 0, fs.NArg())
	for _, a := range fs.Args() {
		p, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("distances: point %q: %w", a, err)
		}
		points = append(points, p)
	}

	var d digest.Multiset[int64]
	switch {
	case kind == digest.Beltway && *start >= 0:
		d, err = digest.BeltwayDistancesFrom(points, *boundary, *start)
	case kind == digest.Beltway:
		d, err = digest.BeltwayDistances(points, *boundary, digest.WithWorkers(cfg.Workers))
	default:
		d, err = digest.TurnpikeDistances(points, *boundary, digest.WithWorkers(cfg.Workers))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, d)
	return nil
}
