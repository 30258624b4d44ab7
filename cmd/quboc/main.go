// Command quboc compiles a cardinality constraint over a list of binary
// variables into a sparse QUBO and prints it.
//
//	quboc compile --kind one-hot --network benes x y z
//	quboc compile --kind equal-to --c1 2 --network bitonic-sort --pad a b c d e
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	sparsequbo "github.com/qubo-sparse/sparsequbo"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("quboc: %v", err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quboc",
	Short: "Compile cardinality constraints into sparse QUBOs",
}

var (
	flagKind      string
	flagNetwork   string
	flagC1        int
	flagC2        int
	flagPad       bool
	flagThreshold int
	flagMaxDegree int
	flagReverse   bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [variables...]",
	Short: "Compile one constraint over the given variables into a QUBO",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseConstraintType(flagKind)
		if err != nil {
			return err
		}
		network, err := parseNetworkType(flagNetwork)
		if err != nil {
			return err
		}

		opts := []sparsequbo.Option{sparsequbo.WithPad(flagPad)}
		if flagThreshold >= 0 {
			opts = append(opts, sparsequbo.WithThreshold(flagThreshold))
		}
		if flagMaxDegree >= 2 {
			opts = append(opts, sparsequbo.WithMaxDegree(flagMaxDegree))
		}
		if cmd.Flags().Changed("reverse") {
			opts = append(opts, sparsequbo.WithReverse(flagReverse))
		}

		q, err := sparsequbo.Compile(args, network, kind, flagC1, flagC2, opts...)
		if err != nil {
			return fmt.Errorf("compile: %w", err)
		}
		printQUBO(cmd, q)
		return nil
	},
}

func init() {
	compileCmd.Flags().StringVar(&flagKind, "kind", "one-hot", "constraint kind: one-hot, equal-to, less-equal, greater-equal, clamp")
	compileCmd.Flags().StringVar(&flagNetwork, "network", "naive", "switching network: naive, bubble-sort, bitonic-sort, odd-even-merge-sort, benes, clos-max-degree, clos-min-edge, divide-and-conquer")
	compileCmd.Flags().IntVar(&flagC1, "c1", 0, "first cardinality bound (meaning depends on --kind)")
	compileCmd.Flags().IntVar(&flagC2, "c2", 0, "second cardinality bound, only used by --kind clamp")
	compileCmd.Flags().BoolVar(&flagPad, "pad", false, "pad the boundary up to the next power of two (required by bitonic-sort/odd-even-merge-sort for non-power-of-two N)")
	compileCmd.Flags().IntVar(&flagThreshold, "threshold", -1, "divide-and-conquer's dense-switch cutoff; negative leaves the constructor's default")
	compileCmd.Flags().IntVar(&flagMaxDegree, "max-degree", 0, "clos-max-degree's maximum fan-in to search over; below 2 leaves the constructor's default")
	compileCmd.Flags().BoolVar(&flagReverse, "reverse", false, "override the network family's default left/right orientation")
	rootCmd.AddCommand(compileCmd)
}

func parseConstraintType(s string) (sparsequbo.ConstraintType, error) {
	switch strings.ToLower(s) {
	case "one-hot", "onehot":
		return sparsequbo.OneHot, nil
	case "equal-to", "equalto":
		return sparsequbo.EqualTo, nil
	case "less-equal", "lessequal":
		return sparsequbo.LessEqual, nil
	case "greater-equal", "greaterequal":
		return sparsequbo.GreaterEqual, nil
	case "clamp":
		return sparsequbo.Clamp, nil
	default:
		return 0, fmt.Errorf("unknown --kind %q", s)
	}
}

func parseNetworkType(s string) (sparsequbo.NetworkType, error) {
	switch strings.ToLower(s) {
	case "naive":
		return sparsequbo.Naive, nil
	case "bubble-sort", "bubblesort":
		return sparsequbo.BubbleSort, nil
	case "bitonic-sort", "bitonicsort":
		return sparsequbo.BitonicSort, nil
	case "odd-even-merge-sort", "oddevenmergesort":
		return sparsequbo.OddEvenMergeSort, nil
	case "benes":
		return sparsequbo.Benes, nil
	case "clos-max-degree", "closmaxdegree":
		return sparsequbo.ClosMaxDegree, nil
	case "clos-min-edge", "closminedge":
		return sparsequbo.ClosMinEdge, nil
	case "divide-and-conquer", "divideandconquer":
		return sparsequbo.DivideAndConquer, nil
	default:
		return 0, fmt.Errorf("unknown --network %q", s)
	}
}

// printQUBO renders q the way QUBO.String does, but highlights the
// constant term and negative coefficients so a terminal reader can spot
// the "reward" terms in a penalty function at a glance.
func printQUBO(cmd *cobra.Command, q sparsequbo.QUBO) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	negative := color.New(color.FgRed)

	bold.Fprintf(out, "constant: ")
	fmt.Fprintf(out, "%g\n", q.Constant)

	for _, v := range q.SortedVariables() {
		c, ok := q.Linear[v]
		if !ok || c == 0 {
			continue
		}
		if c < 0 {
			negative.Fprintf(out, "linear[%s] = %g\n", v, c)
		} else {
			fmt.Fprintf(out, "linear[%s] = %g\n", v, c)
		}
	}
	for _, p := range q.SortedPairs() {
		c, ok := q.Quadratic[p]
		if !ok || c == 0 {
			continue
		}
		if c < 0 {
			negative.Fprintf(out, "quadratic[%s,%s] = %g\n", p.A, p.B, c)
		} else {
			fmt.Fprintf(out, "quadratic[%s,%s] = %g\n", p.A, p.B, c)
		}
	}
}
