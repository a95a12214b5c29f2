// Package main implements the cryptor CLI: a password-driven
// encrypt/decrypt pipeline over the cryptor core's PBKDF2, block
// ciphers, CBC mode, and Hamming error-correction codec.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"hermannm.dev/devlog"
)

var (
	inputPath  string
	outputPath string
	cipherName string
	password   string
	verbose    bool

	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "cryptor",
	Short: "Password-based file encryption over AES/Twofish, CBC mode, and Hamming framing",
	Long: `cryptor derives a 256-bit key from a password via PBKDF2, encrypts or
decrypts a byte stream in CBC mode with a chosen block cipher, and sandwiches
the ciphertext in Hamming(15,11)+parity error-correction framing.

It is a thin driver over the cryptor package's primitives: it owns argument
parsing and file/stdio plumbing, not any cryptographic algorithm.`,
}

func init() {
	logLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stderr, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "input file path (default: stdin)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file path (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&cipherName, "cipher", "c", "aes", "block cipher: aes or twofish")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "password to derive the cipher key from (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-stage progress to stderr")

	// Accept the common "--passwd" misspelling.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "passwd" {
			name = "password"
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
}

// Execute runs the root command, exiting the process with a non-zero
// code on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func requirePassword() error {
	if password == "" {
		return fmt.Errorf("cryptor: -p/--password is required")
	}
	return nil
}

// runID tags one invocation's log lines so concurrent cryptor runs
// (e.g. in a batch script) can be told apart in shared log output.
func runID() string {
	return uuid.New().String()[:8]
}

func logStage(id, stage string, args ...any) {
	if !verbose {
		return
	}
	slog.Info(stage, append([]any{"run", id}, args...)...)
}
