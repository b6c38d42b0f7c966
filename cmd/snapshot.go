package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/inbox"
)

var (
	snapshotRole  string
	snapshotTab   string
	snapshotOpen  string
	snapshotPlain bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the dashboard state as JSON",
	Long: `Print the state the dashboard would render for the sample inbox: the role,
the active tab and its menu, the conversation list, channel counts and, when a
conversation is opened, its thread.

Output is syntax highlighted when stdout supports colors. Use --plain for
scripts.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotRole, "role", "", "Profile to enter as (attendant|manager)")
	snapshotCmd.Flags().StringVar(&snapshotTab, "tab", "", "Tab to open after choosing the role")
	snapshotCmd.Flags().StringVar(&snapshotOpen, "open", "", "Conversation ID to open (inbox tab only)")
	snapshotCmd.Flags().BoolVar(&snapshotPlain, "plain", false, "Disable syntax highlighting")
	rootCmd.AddCommand(snapshotCmd)
}

// buildSnapshot drives a controller over the sample inbox the same way the
// dashboard would and returns its view.
func buildSnapshot(clock inbox.Clock, role, tab, open string) (controller.View, error) {
	convs, threads, err := inbox.Load(inbox.DemoProvider{Clock: clock}, clock)
	if err != nil {
		return controller.View{}, err
	}
	ctrl := controller.New(convs, threads)

	r, err := parseRoleFlag(role)
	if err != nil {
		return controller.View{}, err
	}
	if r != controller.RoleNone {
		if err := ctrl.ChooseRole(r); err != nil {
			return controller.View{}, err
		}
	}
	if tab != "" {
		if err := ctrl.ChangeTab(controller.Tab(tab)); err != nil {
			return controller.View{}, err
		}
	}
	if open != "" {
		if err := ctrl.SelectConversation(open); err != nil {
			return controller.View{}, err
		}
	}
	return ctrl.Snapshot(), nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	view, err := buildSnapshot(inbox.SystemClock{}, snapshotRole, snapshotTab, snapshotOpen)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	highlight := !snapshotPlain && supportsColor(out)
	return writeSnapshot(out, view, highlight)
}

// supportsColor reports whether w is a terminal that renders ANSI colors.
// NO_COLOR and redirected output both disable highlighting.
func supportsColor(w io.Writer) bool {
	if _, ok := w.(*os.File); !ok {
		return false
	}
	switch colorprofile.Detect(w, os.Environ()) {
	case colorprofile.NoTTY, colorprofile.ASCII:
		return false
	default:
		return true
	}
}

func writeSnapshot(w io.Writer, view controller.View, highlight bool) error {
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}
	text := string(data) + "\n"

	if highlight {
		colored, err := highlightJSON(text)
		if err == nil {
			text = colored
		}
	}
	_, err = io.WriteString(w, text)
	return err
}

// highlightJSON colors JSON for a 256-color terminal
func highlightJSON(code string) (string, error) {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}
