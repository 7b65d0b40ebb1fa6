package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/admit/internal/version"
	"github.com/arthur-debert/admit/pkg/logging"
)

var (
	verbosity  int
	configPath string

	rootCmd = &cobra.Command{
		Use:   "admit",
		Short: "Pattern-based admission filtering",
		Long: `admit evaluates values against whitelist/blacklist pattern sets and
filters paths through include/exclude patterns. Patterns may be exact
strings, shell globs, or regular expressions; see "admit docs patterns"
for the full syntax.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Verbosity flag for logging
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is ./admit.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for admit`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("admit version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(admit completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ admit completion bash > /etc/bash_completion.d/admit
  # macOS:
  $ admit completion bash > /usr/local/etc/bash_completion.d/admit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ admit completion zsh > "${fpath[1]}/_admit"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ admit completion fish | source
  # To load completions for each session, execute once:
  $ admit completion fish > ~/.config/fish/completions/admit.fish

PowerShell:
  PS> admit completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}
		return nil
	},
}

var manCmd = &cobra.Command{
	Use:    "man",
	Short:  "Generate man page",
	Long:   `Generate man page for admit`,
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "ADMIT",
			Section: "1",
		}
		return doc.GenManTree(rootCmd, header, "/tmp")
	},
}
