package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/config"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/strength"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/wordlist"
)

// Wordlist flags, shared by all subcommands. Empty disables a list.
var (
	weakPath   string
	bannedPath string
)

func NewRootCmd() *cobra.Command {
	_ = godotenv.Load()
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Check password strength and generate random passwords",
		Long: `passcheck scores passwords against six requirements (character
classes, length, common/banned wordlists), suggests improvements,
and generates random passwords. Run without a subcommand for an
interactive menu.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checker, err := newChecker(cmd.Context())
			if err != nil {
				return err
			}
			return runInteractive(cmd, checker)
		},
	}

	cmd.PersistentFlags().StringVar(&weakPath, "weak", cfg.WeakWordlist, "weak password wordlist (empty to disable)")
	cmd.PersistentFlags().StringVar(&bannedPath, "banned", cfg.BannedWordlist, "banned password wordlist (empty to disable)")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewGenerateCmd())

	return cmd
}

func newChecker(ctx context.Context) (*strength.Checker, error) {
	store := wordlist.NewStore()

	load := func(path string) ([]string, error) {
		if path == "" {
			return nil, nil
		}
		return store.Load(ctx, wordlist.File(path))
	}

	weak, err := load(weakPath)
	if err != nil {
		return nil, err
	}
	banned, err := load(bannedPath)
	if err != nil {
		return nil, err
	}
	return strength.NewChecker(weak, banned), nil
}

func printCheck(cmd *cobra.Command, checker *strength.Checker, pwd string) {
	res := checker.Check(pwd)
	cmd.Printf("\nStrength: %s\n", res.Strength)
	cmd.Printf("Message: %s\n", res.Message)
	cmd.Println("Suggested improvements:")
	cmd.Println()
	for _, s := range checker.Suggest(pwd) {
		cmd.Printf("- %s\n", s)
	}
}

func runInteractive(cmd *cobra.Command, checker *strength.Checker) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	prompt := func(msg string) (string, bool) {
		cmd.Print(msg)
		if !in.Scan() {
			return "", false
		}
		return in.Text(), true
	}

	for {
		cmd.Println("\nPassword Strength Checker CLI")
		cmd.Println("1. Check Password Strength")
		cmd.Println("2. Generate Strong Password")
		cmd.Println("3. Exit")

		choice, ok := prompt("\nEnter your choice (1-3): ")
		if !ok {
			return in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			pwd, ok := prompt("Enter password to check: ")
			if !ok {
				return in.Err()
			}
			printCheck(cmd, checker, pwd)
		case "2":
			raw, ok := prompt(fmt.Sprintf("Enter desired password length (default %d): ", strength.DefaultGenerateLength))
			if !ok {
				return in.Err()
			}
			length := strength.DefaultGenerateLength
			if s := strings.TrimSpace(raw); s != "" {
				n, err := strconv.Atoi(s)
				if err != nil || n <= 0 {
					cmd.Printf("Invalid length. Using default length of %d.\n", strength.DefaultGenerateLength)
				} else {
					length = n
				}
			}
			pwd, err := strength.Generate(length)
			if err != nil {
				return err
			}
			cmd.Printf("\nGenerated Password: %s\n", pwd)
			printCheck(cmd, checker, pwd)
		case "3":
			cmd.Println("Goodbye!")
			return nil
		default:
			cmd.Println("Invalid choice. Please try again.")
		}
	}
}
