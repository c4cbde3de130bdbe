package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netroute/bellmanford"
	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/simulator"
)

const helpText = `Commands:
  add                          add a computer
  remove <id>                  remove a computer (higher ids shift down)
  route <from> <to> <ms>       add a route
  show                         print the network
  path <from> <to> [algo]      shortest path; algo is dijkstra (default) or bellman-ford
  reach <from> <to>            check whether a route exists
  transfer <from> <to> <n>     send n packets
  generate <kind> <args>       append a topology with unit weights:
                                 path <n> | ring <n> | star <n> | complete <n>
                                 grid <rows> <cols>
                                 random <n> <p> [seed]   (weights 1..20)
  clear                        remove every computer
  help                         show this text
  exit                         quit
`

// errExit ends the read loop.
var errExit = errors.New("exit")

// shell reads one command per line and runs it against a Simulator.
// Command failures are printed and the loop goes on.
type shell struct {
	sim    *simulator.Simulator
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

func newShell(sim *simulator.Simulator, in io.Reader, out io.Writer, prompt string) *shell {
	return &shell{sim: sim, in: bufio.NewScanner(in), out: out, prompt: prompt}
}

// run processes lines until exit, end of input or ctx cancellation.
func (s *shell) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !s.in.Scan() {
			return s.in.Err()
		}

		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		err := s.exec(ctx, strings.ToLower(fields[0]), fields[1:])
		if errors.Is(err, errExit) {
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *shell) exec(ctx context.Context, name string, args []string) error {
	switch name {
	case "add":
		id, err := s.sim.AddComputer()
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Computer %d added\n", id)

	case "remove":
		ids, err := ints(args, 1)
		if err != nil {
			return err
		}
		if err = s.sim.RemoveComputer(ids[0]); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Computer %d removed\n", ids[0])

	case "route":
		ids, err := ints(args, 3)
		if err != nil {
			return err
		}
		if err = s.sim.AddRoute(ids[0], ids[1], int64(ids[2])); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Route %d -> %d (%dms) added\n", ids[0], ids[1], ids[2])

	case "show":
		return s.sim.Render(s.out)

	case "path":
		return s.path(args)

	case "reach":
		ids, err := ints(args, 2)
		if err != nil {
			return err
		}
		ok, err := s.sim.Reachable(ids[0], ids[1])
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(s.out, "Route exists from %d to %d\n", ids[0], ids[1])
		} else {
			fmt.Fprintf(s.out, "No route from %d to %d\n", ids[0], ids[1])
		}

	case "transfer":
		ids, err := ints(args, 3)
		if err != nil {
			return err
		}
		err = s.sim.Transfer(ctx, ids[0], ids[1], int64(ids[2]), func(pct int) {
			fmt.Fprintf(s.out, "\rProgress: %d%%", pct)
		})
		fmt.Fprintln(s.out)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Transfer complete: %d packets from %d to %d\n", ids[2], ids[0], ids[1])

	case "generate":
		return s.generate(args)

	case "clear":
		s.sim.Clear()
		fmt.Fprintln(s.out, "Network cleared")

	case "help", "?":
		fmt.Fprint(s.out, helpText)

	case "exit", "quit":
		return errExit

	default:
		return fmt.Errorf("unknown command %q, try help", name)
	}

	return nil
}

// path handles "path <from> <to> [algo]". An unknown algorithm falls back
// to Dijkstra with a warning.
func (s *shell) path(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: path <from> <to> [algo]")
	}
	ids, err := ints(args[:2], 2)
	if err != nil {
		return err
	}

	algo := simulator.Dijkstra
	if len(args) == 3 {
		if algo, err = simulator.ParseAlgorithm(args[2]); err != nil {
			fmt.Fprintf(s.out, "Warning: unknown algorithm %q, using dijkstra\n", args[2])
			algo = simulator.Dijkstra
		}
	}

	rep, err := s.sim.FindPath(ids[0], ids[1], algo)
	var nc *bellmanford.NegativeCycleError
	if errors.As(err, &nc) && nc.DestinationAffected {
		fmt.Fprintf(s.out, "Negative cycle affects computer %d; affected computers: %v\n", ids[1], nc.Affected)
		return nil
	}
	if err != nil {
		return err
	}

	if rep.Warning != nil {
		fmt.Fprintf(s.out, "Warning: negative cycle detected; affected computers: %v\n", rep.Warning.Affected)
	}
	fmt.Fprintf(s.out, "Shortest path (%s): %s\n", rep.Algorithm, joinIDs(rep.Path.Nodes))
	fmt.Fprintf(s.out, "Distance: %dms\n", rep.Path.Distance)

	return nil
}

// generate handles "generate <kind> <args>".
func (s *shell) generate(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: generate <kind> <args>")
	}
	kind, rest := strings.ToLower(args[0]), args[1:]

	var (
		cons builder.Constructor
		opts []builder.Option
	)
	switch kind {
	case "path", "ring", "star", "complete":
		n, err := ints(rest, 1)
		if err != nil {
			return err
		}
		cons = map[string]func(int) builder.Constructor{
			"path":     builder.Path,
			"ring":     builder.Ring,
			"star":     builder.Star,
			"complete": builder.Complete,
		}[kind](n[0])

	case "grid":
		rc, err := ints(rest, 2)
		if err != nil {
			return err
		}
		cons = builder.Grid(rc[0], rc[1])

	case "random":
		if len(rest) < 2 || len(rest) > 3 {
			return errors.New("usage: generate random <n> <p> [seed]")
		}
		n, err := ints(rest[:1], 1)
		if err != nil {
			return err
		}
		p, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return fmt.Errorf("invalid probability %q", rest[1])
		}
		seed := int64(1)
		if len(rest) == 3 {
			if seed, err = strconv.ParseInt(rest[2], 10, 64); err != nil {
				return fmt.Errorf("invalid seed %q", rest[2])
			}
		}
		cons = builder.RandomSparse(n[0], p)
		opts = []builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeight(1, 20))}

	default:
		return fmt.Errorf("unknown topology %q", kind)
	}

	before := s.sim.Network().NodeCount()
	if err := s.sim.Generate(opts, cons); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Generated %s: computers %d..%d\n", kind, before, s.sim.Network().NodeCount()-1)

	return nil
}

// ints parses exactly n integer arguments.
func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}

	return out, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " -> ")
}
