package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/aes-workbench/internal/app"
	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesService crypto.AESService
	defaults   config.CipherDefaults
	logger     logger.Logger
}

// NewAESCommandHandler wires an AES processor and service behind the CLI commands.
func NewAESCommandHandler(defaults config.CipherDefaults, loggerInstance logger.Logger) (*AESCommandHandler, error) {
	if loggerInstance == nil {
		return nil, errors.New("logger cannot be nil")
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	aesService, err := app.NewAESService(aesProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	return &AESCommandHandler{
		aesService: aesService,
		defaults:   defaults,
		logger:     loggerInstance,
	}, nil
}

// EncryptCmd encrypts --input (or --input-file) and prints the ciphertext hex or the JSON record
func (commandHandler *AESCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	mode, keyFormat, ivFormat, err := commandHandler.resolveCipherFlags(cmd)
	if err != nil {
		return err
	}
	key, iv, err := materialFlags(cmd)
	if err != nil {
		return err
	}
	plaintext, err := readInput(cmd)
	if err != nil {
		return err
	}

	output, err := commandHandler.aesService.Encrypt(crypto.EncryptParams{
		Mode:      mode,
		Key:       key,
		KeyFormat: keyFormat,
		IV:        iv,
		IVFormat:  ivFormat,
		Plaintext: plaintext,
	})
	if err != nil {
		commandHandler.logger.Error("Encryption failed: ", err)
		return err
	}

	return commandHandler.emit(cmd, output, output.CiphertextHex)
}

// DecryptCmd decrypts a hex ciphertext or Base64 container and prints the plaintext or the JSON record
func (commandHandler *AESCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	mode, keyFormat, ivFormat, err := commandHandler.resolveCipherFlags(cmd)
	if err != nil {
		return err
	}
	key, iv, err := materialFlags(cmd)
	if err != nil {
		return err
	}
	rawFormat, err := stringFlagOr(cmd, "ciphertext-format", commandHandler.defaults.CiphertextFormat)
	if err != nil {
		return err
	}
	ciphertextFormat, err := crypto.ParseCiphertextFormat(rawFormat)
	if err != nil {
		return err
	}
	ciphertext, err := readInput(cmd)
	if err != nil {
		return err
	}

	output, err := commandHandler.aesService.Decrypt(crypto.DecryptParams{
		Mode:             mode,
		Key:              key,
		KeyFormat:        keyFormat,
		IV:               iv,
		IVFormat:         ivFormat,
		Ciphertext:       ciphertext,
		CiphertextFormat: ciphertextFormat,
	})
	if err != nil {
		commandHandler.logger.Error("Decryption failed: ", err)
		return err
	}

	return commandHandler.emit(cmd, output, output.Plaintext)
}

// GenerateKeyCmd prints a random hex key, or saves it as <uuid>-symmetric-key.hex under --key-dir
func (commandHandler *AESCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	if keySize == 0 {
		keySize = commandHandler.defaults.KeySize
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	keyHex, err := commandHandler.aesService.GenerateKey(keySize)
	if err != nil {
		return err
	}

	if keyDir == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), keyHex)
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.hex", uuid.New()))
	if err := os.WriteFile(keyFilePath, []byte(keyHex+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return err
}

// GenerateIVCmd prints a random 16-byte IV in hex
func (commandHandler *AESCommandHandler) GenerateIVCmd(cmd *cobra.Command, _ []string) error {
	ivHex, err := commandHandler.aesService.GenerateIV()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ivHex)
	return err
}

// ConvertCmd re-encodes --input between text and hex
func (commandHandler *AESCommandHandler) ConvertCmd(cmd *cobra.Command, _ []string) error {
	rawFrom, err := cmd.Flags().GetString("from")
	if err != nil {
		return fmt.Errorf("invalid from flag: %w", err)
	}
	rawTo, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("invalid to flag: %w", err)
	}
	from, err := crypto.ParseFormat(rawFrom)
	if err != nil {
		return err
	}
	to, err := crypto.ParseFormat(rawTo)
	if err != nil {
		return err
	}
	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	converted, err := commandHandler.aesService.Convert(input, from, to)
	if err != nil {
		return err
	}

	path, err := writeOutput(cmd, converted)
	if err != nil {
		return err
	}
	if path != "" {
		commandHandler.logger.Info("Converted value saved to ", path)
	}
	return nil
}

// ModesCmd lists the supported modes and whether each needs an IV
func (commandHandler *AESCommandHandler) ModesCmd(cmd *cobra.Command, _ []string) error {
	for _, mode := range crypto.SupportedModes() {
		iv := "no IV"
		if mode.RequiresIV() {
			iv = "requires IV"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", mode, iv); err != nil {
			return err
		}
	}
	return nil
}

// emit writes the JSON record when --json is set, plain otherwise
func (commandHandler *AESCommandHandler) emit(cmd *cobra.Command, output *crypto.CipherOutput, plain string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("invalid json flag: %w", err)
	}

	result := plain
	if asJSON {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		result = string(data)
	}

	path, err := writeOutput(cmd, result)
	if err != nil {
		return err
	}
	if path != "" {
		commandHandler.logger.Info("Output saved to ", path)
	}
	return nil
}

func (commandHandler *AESCommandHandler) resolveCipherFlags(cmd *cobra.Command) (crypto.Mode, crypto.Format, crypto.Format, error) {
	rawMode, err := stringFlagOr(cmd, "mode", commandHandler.defaults.Mode)
	if err != nil {
		return "", "", "", err
	}
	rawKeyFormat, err := stringFlagOr(cmd, "key-format", commandHandler.defaults.KeyFormat)
	if err != nil {
		return "", "", "", err
	}
	rawIVFormat, err := stringFlagOr(cmd, "iv-format", commandHandler.defaults.IVFormat)
	if err != nil {
		return "", "", "", err
	}

	mode, err := crypto.ParseMode(rawMode)
	if err != nil {
		return "", "", "", err
	}
	keyFormat, err := crypto.ParseFormat(rawKeyFormat)
	if err != nil {
		return "", "", "", err
	}
	ivFormat, err := crypto.ParseFormat(rawIVFormat)
	if err != nil {
		return "", "", "", err
	}
	return mode, keyFormat, ivFormat, nil
}

func materialFlags(cmd *cobra.Command) (string, string, error) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return "", "", fmt.Errorf("invalid key flag: %w", err)
	}
	iv, err := cmd.Flags().GetString("iv")
	if err != nil {
		return "", "", fmt.Errorf("invalid iv flag: %w", err)
	}
	return key, iv, nil
}

func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "", "AES mode: CBC, ECB, CFB, OFB or CTR (default from config)")
	cmd.Flags().StringP("key", "k", "", "AES key (32/48/64 hex digits or 16/24/32 bytes of text)")
	cmd.Flags().StringP("key-format", "", "", "Key format: hex or text (default from config)")
	cmd.Flags().StringP("iv", "", "", "Initialization vector (32 hex digits or 16 bytes of text), ignored for ECB")
	cmd.Flags().StringP("iv-format", "", "", "IV format: hex or text (default from config)")
	cmd.Flags().StringP("output-file", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolP("json", "", false, "Print the full JSON record")
}

func addInputFlags(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("input", "i", "", usage)
	cmd.Flags().StringP("input-file", "", "", "Read the input from this file")
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command, cfg *config.CLIConfig) error {
	if cfg == nil {
		return errors.New("CLI config cannot be nil")
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	handler, err := NewAESCommandHandler(cfg.CipherDefaults, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	registerAESCommands(rootCmd, handler)
	return nil
}

func registerAESCommands(rootCmd *cobra.Command, handler *AESCommandHandler) {
	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a plaintext with AES",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptCmd,
	}
	addCipherFlags(encryptCmd)
	addInputFlags(encryptCmd, "Plaintext to encrypt")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a hex ciphertext or Base64 container with AES",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptCmd,
	}
	addCipherFlags(decryptCmd)
	addInputFlags(decryptCmd, "Ciphertext to decrypt")
	decryptCmd.Flags().StringP("ciphertext-format", "", "", "Ciphertext format: auto, hex or container (default from config)")
	rootCmd.AddCommand(decryptCmd)

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a random AES key",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().IntP("key-size", "", 0, "AES key size in bytes: 16, 24 or 32 (default from config)")
	generateKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the key file in; prints the key when empty")
	rootCmd.AddCommand(generateKeyCmd)

	var generateIVCmd = &cobra.Command{
		Use:   "generate-iv",
		Short: "Generate a random 16-byte IV",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateIVCmd,
	}
	rootCmd.AddCommand(generateIVCmd)

	var convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert a key or IV between text and hex",
		Args:  cobra.NoArgs,
		RunE:  handler.ConvertCmd,
	}
	addInputFlags(convertCmd, "Value to convert")
	convertCmd.Flags().StringP("from", "", "text", "Source format: text or hex")
	convertCmd.Flags().StringP("to", "", "hex", "Target format: text or hex")
	convertCmd.Flags().StringP("output-file", "o", "", "Write the result to this file instead of stdout")
	rootCmd.AddCommand(convertCmd)

	var modesCmd = &cobra.Command{
		Use:   "modes",
		Short: "List the supported AES modes",
		Args:  cobra.NoArgs,
		RunE:  handler.ModesCmd,
	}
	rootCmd.AddCommand(modesCmd)
}
