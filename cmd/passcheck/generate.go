package main

import (
	"github.com/spf13/cobra"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/strength"
)

func NewGenerateCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password and check it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pwd, err := strength.Generate(length)
			if err != nil {
				return err
			}
			cmd.Printf("\nGenerated Password: %s\n", pwd)

			checker, err := newChecker(cmd.Context())
			if err != nil {
				return err
			}
			printCheck(cmd, checker, pwd)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", strength.DefaultGenerateLength, "password length")

	return cmd
}
