// Package main is the entry point for the aes-workbench-cli application.
// It loads the CLI configuration, registers the AES sub-commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/aes-workbench/cmd/aes-workbench-cli/internal/commands"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "aes-workbench-cli",
		Short: "AES encryption and decryption workbench",
		Long: `aes-workbench-cli encrypts and decrypts text with AES in CBC, ECB, CFB, OFB or CTR mode.
Keys and IVs are given as hex or as raw text; ciphertext is printed as hex and
decryption accepts either hex or a Base64 container (OpenSSL "Salted__" envelopes included).

Defaults for mode and formats can be set in a YAML file named by CONFIG_PATH,
or through AES_WORKBENCH_* environment variables, e.g.
- AES_WORKBENCH_CIPHER_DEFAULTS_MODE
- AES_WORKBENCH_LOGGER_LOG_LEVEL`,
		SilenceUsage: true,
	}

	cfg, err := config.InitializeCLIConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitAESCommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
