package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clinicadigital/omnidesk/internal/demo"
	"github.com/clinicadigital/omnidesk/internal/demo/scenarios"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run scripted demos of the dashboard",
	Long: `Run scripted demos of the dashboard for documentation and presentations.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print the captured frames`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print the captured frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

func init() {
	demoRunCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file (default: stdout)")
	demoRunCmd.Flags().IntVarP(&demoWidth, "width", "w", 120, "Terminal width")
	demoRunCmd.Flags().IntVarP(&demoHeight, "height", "H", 40, "Terminal height")
	demoRunCmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(w io.Writer) {
	fmt.Fprintln(w, "Available demo scenarios:")
	fmt.Fprintln(w)
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "  %-15s %s\n", s.Name, s.Description)
	}
}

// getScenario returns a copy of the named scenario sized for this run, so
// the built-in definitions stay untouched.
func getScenario(name string, width, height int) (*demo.Scenario, error) {
	builtin := scenarios.ByName(name)
	if builtin == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'omnidesk demo list' to see available scenarios", name)
	}
	scenario := *builtin

	// Override dimensions if specified
	if width > 0 {
		scenario.Width = width
	}
	if height > 0 {
		scenario.Height = height
	}

	return &scenario, nil
}

func executeScenario(scenario *demo.Scenario, captureAll bool) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = captureAll

	executor := demo.NewExecutor(execCfg)
	return executor.Run(scenario)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logger.DemoLogPath(args[0])); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	defer logger.Close()

	out := cmd.OutOrStdout()
	if demoOutput != "" {
		f, err := os.Create(demoOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return runScenario(out, args[0], demoWidth, demoHeight, demoCaptureAll)
}

func runScenario(w io.Writer, name string, width, height int, captureAll bool) error {
	scenario, err := getScenario(name, width, height)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario, captureAll)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	fmt.Fprintf(w, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(w, f.Content)
	}

	return nil
}
