package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/kintraj/internal/config"
	"github.com/san-kum/kintraj/internal/trajectory"
	"github.com/san-kum/kintraj/internal/trajio"
	"github.com/san-kum/kintraj/internal/viz"
)

var (
	configFile string
	diff       bool
	output     string
	format     string
	startIdx   int
	endIdx     int
	sideName   string
	matrixSpec string
	quantity   string
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kintraj",
		Short: "kinematic trajectory toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&diff, "diff", true, "derive missing quantities by differentiation on read")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "summarize a trajectory file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	deriveCmd := &cobra.Command{
		Use:   "derive [file]",
		Short: "realize all six quantities through the differentiation cascade",
		Args:  cobra.ExactArgs(1),
		RunE:  runDerive,
	}
	deriveCmd.Flags().StringVar(&output, "out", "", "output file (default: stdout)")
	deriveCmd.Flags().StringVar(&format, "format", "json", "stdout format: json or csv")

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot one quantity's components",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&quantity, "quantity", "position", "quantity to plot")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	sliceCmd := &cobra.Command{
		Use:   "slice [file]",
		Short: "truncate all quantities to a sample range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSlice,
	}
	sliceCmd.Flags().IntVar(&startIdx, "start", 0, "start index (inclusive)")
	sliceCmd.Flags().IntVar(&endIdx, "end", 0, "end index (exclusive)")
	sliceCmd.Flags().StringVar(&output, "out", "", "output file (default: stdout)")
	sliceCmd.Flags().StringVar(&format, "format", "json", "stdout format: json or csv")

	transformCmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "apply a rigid transform to position and orientation",
		Args:  cobra.ExactArgs(1),
		RunE:  runTransform,
	}
	transformCmd.Flags().StringVar(&matrixSpec, "matrix", "", "16 comma-separated row-major values (default: identity)")
	transformCmd.Flags().StringVar(&sideName, "side", "right", "composition side: right or left")
	transformCmd.Flags().StringVar(&output, "out", "", "output file (default: stdout)")
	transformCmd.Flags().StringVar(&format, "format", "json", "stdout format: json or csv")

	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "interactive trajectory viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	rootCmd.AddCommand(infoCmd, deriveCmd, plotCmd, sliceCmd, transformCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the optional config file under the flags: a flag the
// user set always wins, everything else falls back to the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("diff") {
		cfg.Differentiate = diff
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	if cmd.Flags().Changed("start") {
		cfg.Slice.Start = startIdx
		cfg.Slice.Enabled = true
	}
	if cmd.Flags().Changed("end") {
		cfg.Slice.End = endIdx
		cfg.Slice.Enabled = true
	}
	if cmd.Flags().Changed("side") {
		cfg.Transform.Side = sideName
	}
	return cfg, nil
}

func loadTrajectory(path string, diffOnDemand bool) (*trajectory.Trajectory, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return trajio.ReadJSON(path, diffOnDemand)
	default:
		return trajio.ReadCSV(path, diffOnDemand)
	}
}

func writeTrajectory(path, stdoutFormat string, tr *trajectory.Trajectory) error {
	if path == "" {
		if stdoutFormat == "csv" {
			return trajio.EncodeCSV(os.Stdout, tr)
		}
		return trajio.EncodeJSON(os.Stdout, tr)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return trajio.WriteJSON(path, tr)
	default:
		return trajio.WriteCSV(path, tr)
	}
}

func parseMatrix(arg string) (*mat.Dense, error) {
	if arg == "" {
		return nil, nil
	}
	parts := strings.Split(arg, ",")
	if len(parts) != 16 {
		return nil, fmt.Errorf("matrix needs 16 values, got %d", len(parts))
	}
	vals := make([]float64, 16)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad matrix value %q: %w", p, err)
		}
		vals[i] = v
	}
	return mat.NewDense(4, 4, vals), nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := loadTrajectory(args[0], cfg.Differentiate)
	if err != nil {
		return err
	}

	fmt.Printf("file: %s\n", args[0])
	fmt.Printf("samples: %d\n", tr.Len())
	fmt.Printf("differentiate on demand: %v\n\n", tr.DifferentiateOnDemand())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tSTATUS\tSAMPLES")
	for _, q := range trajectory.Quantities() {
		status, n := "unset", "-"
		if tr.Has(q) {
			data, err := tr.Get(q)
			if err != nil {
				return err
			}
			status, n = "stored", strconv.Itoa(len(data))
		} else if tr.DifferentiateOnDemand() {
			if _, ok := hasCascadePath(tr, q); ok {
				status = "derivable"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", q, status, n)
	}
	return w.Flush()
}

// hasCascadePath walks the chain below q looking for stored samples,
// without triggering any derivation.
func hasCascadePath(tr *trajectory.Trajectory, q trajectory.Quantity) (trajectory.Quantity, bool) {
	chains := map[trajectory.Quantity][]trajectory.Quantity{
		trajectory.Velocity:            {trajectory.Position},
		trajectory.Acceleration:        {trajectory.Velocity, trajectory.Position},
		trajectory.AngularVelocity:     {trajectory.Orientation},
		trajectory.AngularAcceleration: {trajectory.AngularVelocity, trajectory.Orientation},
	}
	for _, lower := range chains[q] {
		if tr.Has(lower) {
			return lower, true
		}
	}
	return 0, false
}

func runDerive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := loadTrajectory(args[0], true)
	if err != nil {
		return err
	}
	for _, q := range trajectory.Quantities() {
		if _, err := tr.Get(q); err != nil {
			return err
		}
	}
	return writeTrajectory(cfg.Output, cfg.Format, tr)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := loadTrajectory(args[0], cfg.Differentiate)
	if err != nil {
		return err
	}
	q, err := trajectory.ParseQuantity(quantity)
	if err != nil {
		return err
	}
	out, err := viz.PlotComponents(tr, q, plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runSlice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := loadTrajectory(args[0], cfg.Differentiate)
	if err != nil {
		return err
	}
	if !cfg.Slice.Enabled {
		return fmt.Errorf("no slice range given (use --start/--end or a config file)")
	}
	if err := tr.Slice(cfg.Slice.Start, cfg.Slice.End); err != nil {
		return err
	}
	return writeTrajectory(cfg.Output, cfg.Format, tr)
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := loadTrajectory(args[0], cfg.Differentiate)
	if err != nil {
		return err
	}

	T, err := parseMatrix(matrixSpec)
	if err != nil {
		return err
	}
	if T == nil {
		if T, err = cfg.Transform.Matrix4(); err != nil {
			return err
		}
	}
	side, err := cfg.Transform.ParsedSide()
	if err != nil {
		return err
	}

	transformed, err := tr.Transform(T, side)
	if err != nil {
		return err
	}
	return writeTrajectory(cfg.Output, cfg.Format, transformed)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := loadTrajectory(args[0], cfg.Differentiate)
	if err != nil {
		return err
	}
	m := viz.NewModel(tr, filepath.Base(args[0]))
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
