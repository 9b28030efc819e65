package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/solve"
)

type options struct {
	in       string
	verb     string
	varsfile string
	given    []string
	single   bool
	lines    bool
	echo     bool
	strict   bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "solve [flags] [--] [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `solve evaluates arithmetic expressions such as "x^2/sin(2*pi/y)-x/2".

Expressions are read from the arguments, or from the input file or standard
input when there are no arguments. Variables come from a TOML or YAML file
given with --vars and from --given definitions, which may themselves be
expressions of earlier variables. An expression that fails to evaluate is
reported and prints as 0 unless --strict is given. Put expressions beginning
with a minus sign after "--".`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := o.sources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if o.single {
				return run[float32](cmd.OutOrStdout(), cmd.ErrOrStderr(), &o, srcs)
			}
			return run[float64](cmd.OutOrStdout(), cmd.ErrOrStderr(), &o, srcs)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.in, "in", "", "input file (default stdin if no args given)")
	f.StringVar(&o.verb, "fmt", "%g", "result formatting verb")
	f.StringArrayVarP(&o.given, "given", "g", nil, "name=value variable definition (any number of times)")
	f.StringVar(&o.varsfile, "vars", "", "TOML or YAML file of variable definitions")
	f.BoolVar(&o.single, "single", false, "evaluate in single precision")
	f.BoolVarP(&o.lines, "lines", "n", false, "evaluate separate input lines as separate expressions")
	f.BoolVar(&o.echo, "echo", false, "print normalized expressions and their variables")
	f.BoolVar(&o.strict, "strict", false, "fail if any expression fails instead of printing 0")
	return cmd
}

// sources collects the expression texts to evaluate, in order: the input
// file or stdin first, then the arguments.
func (o *options) sources(stdin io.Reader, args []string) ([]string, error) {
	var r io.Reader
	switch {
	case o.in != "" && o.in != "-":
		f, err := os.Open(o.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	case o.in == "-", len(args) == 0:
		r = stdin
	}
	var srcs []string
	if r != nil {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		if o.lines {
			for _, line := range strings.Split(string(b), "\n") {
				if strings.TrimSpace(line) != "" {
					srcs = append(srcs, line)
				}
			}
		} else if strings.TrimSpace(string(b)) != "" {
			srcs = append(srcs, string(b))
		}
	}
	return append(srcs, args...), nil
}

func run[T solve.Float](stdout, stderr io.Writer, o *options, srcs []string) error {
	errc := color.New(color.FgRed)
	failed := 0
	report := func(err error) {
		failed++
		errc.Fprintf(stderr, "%v\n", err)
	}
	ctx := solve.NewContext(solve.Report[T](report))
	if o.varsfile != "" {
		vars, err := loadVars(o.varsfile)
		if err != nil {
			return err
		}
		for k, v := range vars {
			ctx.Set(k, T(v))
		}
	}
	for _, d := range o.given {
		name, val, err := splitGiven(d)
		if err != nil {
			return err
		}
		r, err := given(ctx, val)
		if err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
		ctx.Set(name, r)
	}

	exprs := make([]*solve.Expr[T], 0, len(srcs))
	for _, src := range srcs {
		e, err := solve.Compile[T](src)
		if err != nil {
			return fmt.Errorf("compiling %q: %w", strings.TrimSpace(src), err)
		}
		exprs = append(exprs, e)
	}

	verb := o.verb + "\n"
	for _, e := range exprs {
		if o.echo {
			fmt.Fprintf(stdout, "%v %q : ", e, e.Vars())
		}
		fmt.Fprintf(stdout, verb, ctx.Solve(e))
	}
	if o.strict && failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// given evaluates the value of a variable definition using the variables
// defined so far.
func given[T solve.Float](ctx *solve.Context[T], val string) (T, error) {
	e, err := solve.Compile[T](val)
	if err != nil {
		return 0, err
	}
	return ctx.Eval(e)
}

func splitGiven(s string) (name, val string, err error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 || strings.TrimSpace(d[0]) == "" {
		return "", "", fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	return strings.TrimSpace(d[0]), strings.TrimSpace(d[1]), nil
}
