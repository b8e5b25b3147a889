package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readInput returns the value of --input, or the contents of --input-file
// when --input is empty. A single trailing newline is dropped from file input.
func readInput(cmd *cobra.Command) (string, error) {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return "", fmt.Errorf("invalid input flag: %w", err)
	}
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}

	if input != "" && inputFilePath != "" {
		return "", fmt.Errorf("--input and --input-file are mutually exclusive")
	}
	if inputFilePath == "" {
		return input, nil
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	content := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(content, "\r"), nil
}

// writeOutput writes result to --output-file when set, else to the command's stdout.
func writeOutput(cmd *cobra.Command, result string) (string, error) {
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", fmt.Errorf("invalid output-file flag: %w", err)
	}

	if outputFilePath == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
		return "", err
	}

	if err := os.WriteFile(outputFilePath, []byte(result+"\n"), 0600); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outputFilePath, nil
}

// stringFlagOr returns the flag value, or fallback when the flag was left empty.
func stringFlagOr(cmd *cobra.Command, name, fallback string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return fallback, nil
	}
	return value, nil
}
