// Command workbook prints the worked examples from the comprehension
// tutorial: each subcommand evaluates one comprehension shape and shows
// the result the way the original material displays it.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"comprehend/slicecomp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "workbook",
		Short: "Worked examples of comprehension evaluation",
		Long: `workbook evaluates the tutorial's comprehension examples with the
comprehend library and prints each result next to the inputs that
produced it.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newSquaresCmd(),
		newKeepCmd(),
		newGradesCmd(),
		newMatrixCmd(),
		newPairsCmd(),
	)
	return root
}

func newSquaresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squares",
		Short: "Map: square every element",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := []int{1, 2, 3, 4, 5}
			out := slicecomp.Map(input, func(x int) int { return x * x })
			fmt.Fprintf(cmd.OutOrStdout(), "input:   %v\nsquares: %v\n", input, out)
			return nil
		},
	}
}

func newKeepCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "keep",
		Short: "MapWhere: keep values at most the limit, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := []int{3, 8, 2, 9, 5}
			kept := slicecomp.MapWhere(input,
				func(x int) int { return x },
				func(x int) bool { return x <= limit },
			)
			fmt.Fprintf(cmd.OutOrStdout(), "input: %v\nkept (<= %d): %v\n", input, limit, kept)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "keep values at most this large")
	return cmd
}

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "ToMap: letter grade per score, later rows win",
		RunE: func(cmd *cobra.Command, args []string) error {
			type entry struct {
				Name  string
				Score int
			}
			// "ada" appears twice; the regrade wins.
			entries := []entry{{"ada", 78}, {"max", 91}, {"ada", 84}}

			grades := slicecomp.ToMap(entries,
				func(e entry) string { return e.Name },
				func(e entry) string { return letterGrade(e.Score) },
			)
			for _, name := range []string{"ada", "max"} {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, grades[name])
			}
			return nil
		},
	}
}

func letterGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	default:
		return "C"
	}
}

func newMatrixCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Product: the (i+1)/(j+1) reciprocal matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := make([]int, size)
			for i := range idx {
				idx[i] = i
			}

			cells := slicecomp.Product(idx, idx, func(i, j int) string {
				return strconv.FormatFloat(float64(i+1)/float64(j+1), 'f', 2, 64)
			})

			headers := append([]string{"i\\j"}, slicecomp.Map(idx, strconv.Itoa)...)
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers(headers...)
			for i := range idx {
				row := append([]string{strconv.Itoa(i)}, cells[i*size:(i+1)*size]...)
				t.Row(row...)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 3, "matrix dimension")
	return cmd
}

func newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "ProductWhere: off-diagonal (i, j, (i+1)/(j+1)) triples",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := []int{0, 1, 2}
			triples := slicecomp.ProductWhere(idx, idx,
				func(i, j int) string {
					return fmt.Sprintf("(%d, %d, %.3f)", i, j, float64(i+1)/float64(j+1))
				},
				func(i, j int) bool { return i != j },
			)
			for _, tr := range triples {
				fmt.Fprintln(cmd.OutOrStdout(), tr)
			}
			return nil
		},
	}
}
