package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/champsim-tools/traceplot/simlog"
)

var (
	extractDir    string // Directory to extract
	extractPolicy string // Policy label for the printed rows
	extractTraces int    // Expected number of trace files
)

// extractCmd exposes the extraction layer on its own, for checking what
// the parser sees when a simulator's log format drifts.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract metrics from one results directory and print them",
	Run: func(cmd *cobra.Command, args []string) {
		results, err := simlog.Collect(extractDir, extractPolicy, simlog.ExpectedNames(extractTraces))
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprint(w, "trace\tpolicy")
		for _, metric := range simlog.MetricOrder {
			fmt.Fprintf(w, "\t%s", metric)
		}
		fmt.Fprintln(w)
		for _, r := range results {
			fmt.Fprintf(w, "%d\t%s", r.Trace, r.Policy)
			for _, metric := range simlog.MetricOrder {
				fmt.Fprintf(w, "\t%s", simlog.FormatValue(metric, r.Metrics[metric]))
			}
			fmt.Fprintln(w)
		}
		w.Flush()
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractDir, "dir", "", "Results directory to extract (required)")
	extractCmd.Flags().StringVar(&extractPolicy, "policy", "default", "Policy label for the printed rows")
	extractCmd.Flags().IntVar(&extractTraces, "traces", 4, "Expected number of traceN.txt files")
	extractCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(extractCmd)
}
