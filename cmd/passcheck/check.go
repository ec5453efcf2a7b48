package main

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

type checkResult struct {
	Strength    string   `json:"strength"`
	Score       int      `json:"score"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func NewCheckCmd() *cobra.Command {
	var (
		asJSON  bool
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Check the strength of a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := newChecker(cmd.Context())
			if err != nil {
				return err
			}

			var pwd string
			if len(args) == 1 {
				pwd = args[0]
			} else {
				cmd.Print("Enter password to check: ")
				in := bufio.NewScanner(cmd.InOrStdin())
				if !in.Scan() {
					return in.Err()
				}
				pwd = in.Text()
			}

			res := checker.Check(pwd)
			out := checkResult{
				Strength:    res.Strength,
				Score:       res.Score,
				Message:     res.Message,
				Suggestions: checker.Suggest(pwd),
			}

			if outFile != "" {
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(outFile, data, 0o600); err != nil {
					return err
				}
				cmd.Printf("Result written to %s\n", outFile)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			printCheck(cmd, checker, pwd)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the JSON result to a file")

	return cmd
}
