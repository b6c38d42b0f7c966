package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/clinicadigital/omnidesk/internal/app"
	"github.com/clinicadigital/omnidesk/internal/config"
	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/demo"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	roleFlag              string
	noSimulate            bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "omnidesk",
	Short: "Omnichannel service dashboard for clinics",
	Long: `Omnidesk is a terminal dashboard that gathers patient conversations from
WhatsApp, Instagram, e-mail and the website chat into one inbox, with an
executive view for managers.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&roleFlag, "role", "", "Skip the profile selector (attendant|manager)")
	rootCmd.Flags().BoolVar(&noSimulate, "no-simulate", false, "Start with the inbound message simulator paused")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("omnidesk %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("omnidesk %s\n", version)
}

// parseRoleFlag accepts an empty value, meaning "show the selector".
func parseRoleFlag(s string) (controller.Role, error) {
	if s == "" {
		return controller.RoleNone, nil
	}
	return controller.ParseRole(s)
}

func runTUI(cmd *cobra.Command, args []string) error {
	role, err := parseRoleFlag(roleFlag)
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if noSimulate {
		cfg.SetSimulatorEnabled(false)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m, err := app.New(cfg, app.Options{
		Version: version,
		Role:    role,
		Feed:    demo.NewSimulator(cfg.SimulatorInterval(), nil),
	})
	if err != nil {
		return fmt.Errorf("error starting dashboard: %w", err)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
