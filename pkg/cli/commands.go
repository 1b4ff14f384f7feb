package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/mathplot/pkg/curve"
	"github.com/wildfunctions/mathplot/pkg/engine"
	"github.com/wildfunctions/mathplot/pkg/quad"
)

type exprOptions struct {
	expr     string
	notation string
}

func addExprFlags(cmd *cobra.Command, o *exprOptions) {
	cmd.Flags().StringVarP(&o.expr, "expr", "e", "", "expression text")
	cmd.Flags().StringVarP(&o.notation, "notation", "n", "aos", "input notation (aos, rpn)")
	_ = cmd.MarkFlagRequired("expr")
}

// newSession loads the config and hands the expression to a fresh engine.
// A malformed expression is absorbed by the engine, not reported here:
// downstream reads degrade to empty output and NaN areas.
func newSession(opts *options, eo *exprOptions) (*engine.Engine, engine.Format, error) {
	format, ok := engine.ParseFormat(eo.notation)
	if !ok {
		return nil, 0, fmt.Errorf("unknown notation: %s (available: aos, rpn)", eo.notation)
	}
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return nil, 0, err
	}
	eng := engine.New(cfg)
	eng.SetExpression(eo.expr, format)
	return eng, format, nil
}

func newPrintCmd(opts *options) *cobra.Command {
	eo := &exprOptions{}
	var out string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the function and its derivative",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = eo.notation
			}
			outFormat, ok := engine.ParseFormat(out)
			if !ok {
				return fmt.Errorf("unknown notation: %s (available: aos, rpn)", out)
			}
			eng, _, err := newSession(opts, eo)
			if err != nil {
				return err
			}
			for _, line := range eng.Print(outFormat) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	addExprFlags(cmd, eo)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output notation (default: same as --notation)")
	return cmd
}

func newAreaCmd(opts *options) *cobra.Command {
	eo := &exprOptions{}
	var (
		ruleName       string
		from, to, step float64
	)

	cmd := &cobra.Command{
		Use:   "area",
		Short: "Estimate the definite integral of the function",
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := quad.Get(ruleName)
			if err != nil {
				return err
			}
			eng, _, err := newSession(opts, eo)
			if err != nil {
				return err
			}

			cfg := eng.Config()
			a, b, h := cfg.IntegStart, cfg.IntegEnd, cfg.IntegStep
			if cmd.Flags().Changed("from") {
				a = from
			}
			if cmd.Flags().Changed("to") {
				b = to
			}
			if cmd.Flags().Changed("step") {
				h = step
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", eng.AreaOver(rule, a, b, h))
			return nil
		},
	}

	addExprFlags(cmd, eo)
	cmd.Flags().StringVarP(&ruleName, "rule", "r", "trapezoidal",
		"quadrature rule ("+strings.Join(quad.Names(), ", ")+")")
	cmd.Flags().Float64Var(&from, "from", 0, "lower bound (default: configured window)")
	cmd.Flags().Float64Var(&to, "to", 0, "upper bound (default: configured window)")
	cmd.Flags().Float64Var(&step, "step", 0, "step width (default: configured window)")
	return cmd
}

func newSampleCmd(opts *options) *cobra.Command {
	eo := &exprOptions{}
	var (
		derivative, polar bool
		from, to, step    float64
		format            string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample curve points for plotting",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, inFormat, err := newSession(opts, eo)
			if err != nil {
				return err
			}

			cfg := eng.Config()
			var a, b, h float64
			if polar {
				a, b, h = cfg.PolarStart, cfg.PolarEnd, cfg.PolarStep
			} else {
				a, b, h = cfg.PlotStart, cfg.PlotEnd, cfg.PlotStep
			}
			if cmd.Flags().Changed("from") {
				a = from
			}
			if cmd.Flags().Changed("to") {
				b = to
			}
			if cmd.Flags().Changed("step") {
				h = step
			}

			var it curve.Iterator
			if polar {
				it = eng.Polar(derivative, a, b, h)
			} else {
				it = eng.Cartesian(derivative, a, b, h)
			}

			report := SampleReport{
				Expression: eo.expr,
				Notation:   inFormat.String(),
				Derivative: derivative,
				Polar:      polar,
			}
			for it.HasNext() {
				p, err := it.Next()
				if err != nil {
					break
				}
				report.Points = append(report.Points, p)
			}

			switch format {
			case "json":
				return WriteJSONSample(cmd.OutOrStdout(), report)
			default:
				WriteTextSample(cmd.OutOrStdout(), report)
				return nil
			}
		},
	}

	addExprFlags(cmd, eo)
	cmd.Flags().BoolVarP(&derivative, "derivative", "d", false, "sample the derivative instead of the function")
	cmd.Flags().BoolVar(&polar, "polar", false, "sweep the angle and plot r = f(theta)")
	cmd.Flags().Float64Var(&from, "from", 0, "sweep start (default: configured window)")
	cmd.Flags().Float64Var(&to, "to", 0, "sweep end (default: configured window)")
	cmd.Flags().Float64Var(&step, "step", 0, "sweep step (default: configured window)")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json)")
	return cmd
}
