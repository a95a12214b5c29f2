package main

import (
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a byte stream produced by encrypt",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePassword(); err != nil {
			return err
		}

		id := runID()
		framed, err := readInput()
		if err != nil {
			return err
		}

		plaintext, err := decryptPipeline(id, framed)
		if err != nil {
			return err
		}

		return writeOutput(plaintext)
	},
}
