package commands

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command. The store lives in memory, so this is
// the way to see changes from one command in the next.
func InteractiveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (keeps data across commands)",
		Long: `Start an interactive session where you can run multiple commands against the same data.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "\nStarting interactive session...")
			fmt.Fprintln(out, "Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Get all sibling commands (excluding interactive itself)
			commands := make(map[string]*cobra.Command)
			if rootCmd := cmd.Parent(); rootCmd != nil {
				for _, subCmd := range rootCmd.Commands() {
					switch subCmd.Name() {
					case "interactive", "completion", "help":
						continue
					}
					commands[subCmd.Name()] = subCmd
				}
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())

			for {
				fmt.Fprint(out, "> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts, err := splitCommandLine(line)
				if err != nil {
					fmt.Fprintf(out, "✗ Error: %v\n\n", err)
					continue
				}
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Fprintln(out, "Goodbye!")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(out, commands)
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Fprintf(out, "✗ Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				if err := runInteractive(targetCmd, cmdArgs); err != nil {
					fmt.Fprintf(out, "✗ Error: %v\n\n", err)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}

	return cmd
}

// runInteractive executes a command's RunE directly, bypassing Execute() so the
// root's PersistentPreRunE does not rebuild the app and its in-memory store
func runInteractive(targetCmd *cobra.Command, args []string) error {
	resetFlags(targetCmd.Flags())

	if err := targetCmd.ParseFlags(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	args = targetCmd.Flags().Args()

	if err := targetCmd.ValidateRequiredFlags(); err != nil {
		return err
	}
	if targetCmd.Args != nil {
		if err := targetCmd.Args(targetCmd, args); err != nil {
			return err
		}
	}

	if targetCmd.RunE != nil {
		return targetCmd.RunE(targetCmd, args)
	}
	if targetCmd.Run != nil {
		targetCmd.Run(targetCmd, args)
	}
	return nil
}

// resetFlags restores defaults left over from a previous run
func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		if sv, ok := flag.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
			return
		}
		flag.Value.Set(flag.DefValue)
	})
}

// splitCommandLine splits on whitespace, keeping single- or double-quoted sections together
func splitCommandLine(line string) ([]string, error) {
	var (
		parts   []string
		current strings.Builder
		inQuote rune // 0 outside quotes
		pending bool
	)
	for _, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = r
			pending = true
		case unicode.IsSpace(r):
			if pending {
				parts = append(parts, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if inQuote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", inQuote)
	}
	if pending {
		parts = append(parts, current.String())
	}
	return parts, nil
}

func printInteractiveHelp(out io.Writer, commands map[string]*cobra.Command) {
	fmt.Fprintln(out, "\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(out, "  %-36s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Fprintln(out, "\n  help                                 Show this help message")
	fmt.Fprintln(out, "  exit, quit                           Exit the interactive session")
}
