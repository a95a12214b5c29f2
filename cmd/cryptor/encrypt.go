package main

import (
	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a byte stream with a password-derived key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePassword(); err != nil {
			return err
		}

		id := runID()
		plaintext, err := readInput()
		if err != nil {
			return err
		}

		framed, err := encryptPipeline(id, plaintext)
		if err != nil {
			return err
		}

		return writeOutput(framed)
	},
}
