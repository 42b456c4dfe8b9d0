package main

import (
	"fmt"
	"os"

	"oceanguard/internal/logging"
	"oceanguard/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	demoName   string
	demoScript string
)

// demoCmd runs a scripted session without the TUI
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an example session headlessly",
	Long: `Runs a sequence of actions through a fresh session and prints the text
each one returns. Without --script the built-in example is used: collect 3 kg
of trash, add 2 kg of calcium bicarbonate, then show the impact.

Script format (YAML):
  name: Alice
  steps:
    - action: log_trash
      input: "3"
    - action: view_impact

Actions: log_trash, add_additive, set_location, add_friend, view_impact,
view_friends, post_update, view_feed, exit`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoName, "name", "Alice", "Participant name (overrides the script's name)")
	demoCmd.Flags().StringVar(&demoScript, "script", "", "YAML action script")
}

func runDemo(cmd *cobra.Command, args []string) error {
	script := session.ExampleScript(demoName)
	if demoScript != "" {
		f, err := os.Open(demoScript)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()

		script, err = session.LoadScript(f)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") || script.Name == "" {
			script.Name = demoName
		}
	}

	sess := session.New(session.ConfigFrom(appConfig))
	logger.Debug("Running demo",
		zap.String("session", sess.ID()),
		zap.String("name", script.Name),
		zap.Int("steps", len(script.Steps)))
	logging.CLI("Demo session %s with %d steps", sess.ID(), len(script.Steps))
	cliLog := logging.Get(logging.CategoryCLI).With("session", sess.ID())

	results, err := script.Run(sess)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, sess.Greeting())
	for _, r := range results {
		title := r.Title
		if r.Err != nil && r.Output == "" {
			title = "Invalid Input"
			logger.Warn("Step rejected", zap.Stringer("action", r.Step.Action), zap.Error(r.Err))
			cliLog.Warn("Step %s rejected: %v", r.Step.Action, r.Err)
		}
		fmt.Fprintf(out, "\n[%s]\n", title)
		if r.Output != "" {
			fmt.Fprintln(out, r.Output)
		} else {
			fmt.Fprintln(out, r.Err)
		}
	}
	return nil
}
