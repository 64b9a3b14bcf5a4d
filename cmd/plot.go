package cmd

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/champsim-tools/traceplot/chart"
	"github.com/champsim-tools/traceplot/report"
	"github.com/champsim-tools/traceplot/simlog"
)

// CLI flags for the single-job invocation (ignored when --config is given).
var (
	jobsConfigPath  string // Path to a jobs YAML file
	baselineDir     string // Baseline results directory
	comparisonDir   string // Comparison results directory
	baselineLabel   string // Policy label for the baseline side
	comparisonLabel string // Policy label for the comparison side
	outputDir       string // Artifact output directory
	traceCount      int    // Expected number of trace result files
	chartsMode      string // "all" or "speedup-only"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Extract metrics from two result directories and render comparison charts",
	Run: func(cmd *cobra.Command, args []string) {
		jobs := []Job{{
			Name:            "default",
			BaselineDir:     baselineDir,
			ComparisonDir:   comparisonDir,
			BaselineLabel:   baselineLabel,
			ComparisonLabel: comparisonLabel,
			OutputDir:       outputDir,
			Traces:          traceCount,
			Charts:          chartsMode,
		}}
		if jobsConfigPath != "" {
			cfg, err := LoadJobsConfig(jobsConfigPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			jobs = cfg.Jobs
		}
		for i := range jobs {
			jobs[i].applyDefaults()
			if err := jobs[i].validate(); err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		failed := 0
		for _, job := range jobs {
			if err := runJob(job); err != nil {
				logrus.Errorf("job %q: %v", job.Name, err)
				failed++
			}
		}
		if failed == len(jobs) {
			logrus.Fatalf("all %d comparison jobs failed, no artifacts produced", len(jobs))
		}
	},
}

// runJob runs the full pipeline for one comparison: locate, extract, join,
// render. Directory-level failures on either side abort the job; per-file
// and per-field failures have already degraded to undefined values upstream.
func runJob(job Job) error {
	names := simlog.ExpectedNames(job.Traces)

	baseline, err := simlog.Collect(job.BaselineDir, job.BaselineLabel, names)
	if err != nil {
		return err
	}
	comparison, err := simlog.Collect(job.ComparisonDir, job.ComparisonLabel, names)
	if err != nil {
		return err
	}

	table := report.Join(baseline, comparison, job.BaselineLabel, job.ComparisonLabel)
	table.AddSpeedup()

	for _, row := range table.Rows {
		logrus.Infof("Processed trace%d: %s IPC=%s, %s IPC=%s, speedup=%s",
			row.Trace,
			job.BaselineLabel, simlog.FormatValue(simlog.MetricIPC, row.Baseline[simlog.MetricIPC]),
			job.ComparisonLabel, simlog.FormatValue(simlog.MetricIPC, row.Comparison[simlog.MetricIPC]),
			simlog.FormatValue(simlog.MetricSpeedup, row.Speedup))
	}

	if job.Charts == ChartsAll {
		for _, metric := range simlog.MetricOrder {
			path, err := chart.RenderMetric(table, metric, job.OutputDir)
			if err != nil {
				return err
			}
			logrus.Infof("Saved plot: %s", path)
		}
	}

	path, err := chart.RenderSpeedup(table, job.OutputDir)
	if err != nil {
		return err
	}
	logrus.Infof("Saved speedup plot: %s", path)

	if job.Charts == ChartsAll {
		title := "Per-trace metrics: " + job.ComparisonLabel + " vs " + job.BaselineLabel +
			" (speedup = " + job.ComparisonLabel + " / " + job.BaselineLabel + ")"
		path, err = chart.RenderTable(table, title, job.OutputDir)
		if err != nil {
			return err
		}
		logrus.Infof("Saved table: %s", path)

		csvPath := filepath.Join(job.OutputDir, "metrics_summary.csv")
		if err := table.WriteCSV(csvPath); err != nil {
			return err
		}
		logrus.Infof("Saved table CSV: %s", csvPath)
	}

	s := report.Summarize(table)
	logrus.Infof("job %q: %d/%d traces with defined speedup, mean=%s geomean=%s",
		job.Name, s.Defined, s.Traces,
		simlog.FormatValue(simlog.MetricSpeedup, s.Mean),
		simlog.FormatValue(simlog.MetricSpeedup, s.Geomean))
	return nil
}

func init() {
	plotCmd.Flags().StringVar(&jobsConfigPath, "config", "", "Jobs YAML file (overrides the single-job flags)")
	plotCmd.Flags().StringVar(&baselineDir, "baseline-dir", "outputs/no_prefetcher", "Baseline results directory")
	plotCmd.Flags().StringVar(&comparisonDir, "comparison-dir", "outputs_latest/exclusive_no", "Comparison results directory")
	plotCmd.Flags().StringVar(&baselineLabel, "baseline-label", "noninclusive", "Label for the baseline policy")
	plotCmd.Flags().StringVar(&comparisonLabel, "comparison-label", "exclusive", "Label for the comparison policy")
	plotCmd.Flags().StringVar(&outputDir, "output-dir", "outputs_latest/plots_task2", "Directory for rendered artifacts")
	plotCmd.Flags().IntVar(&traceCount, "traces", 4, "Expected number of traceN.txt files per directory")
	plotCmd.Flags().StringVar(&chartsMode, "charts", ChartsAll, "Charts to render: all or speedup-only")

	rootCmd.AddCommand(plotCmd)
}
