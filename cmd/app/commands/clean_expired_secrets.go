package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	secretsUseCase "github.com/allisson/filebucket/internal/secrets/usecase"
)

// RunCleanExpiredSecrets deletes every secret whose expiry has passed,
// across all users. Tokens issued by a deleted secret stop verifying.
// Outputs the number of deleted secrets in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredSecrets(
	ctx context.Context,
	secretUseCase secretsUseCase.SecretUseCase,
	logger *slog.Logger,
	format string,
	io IOTuple,
) error {
	logger.Info("cleaning expired secrets")

	deleted, err := secretUseCase.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to clean expired secrets: %w", err)
	}

	if format == "json" {
		outputCleanJSON(deleted, io.Writer)
	} else {
		outputCleanText(deleted, io.Writer)
	}

	logger.Info("expired secrets cleaned", slog.Int64("deleted", deleted))

	return nil
}

// outputCleanText outputs the result in human-readable text format.
func outputCleanText(deleted int64, writer io.Writer) {
	_, _ = fmt.Fprintf(writer, "Deleted %d expired secret(s)\n", deleted)
}

// outputCleanJSON outputs the result in JSON format for machine consumption.
func outputCleanJSON(deleted int64, writer io.Writer) {
	result := map[string]int64{
		"deleted": deleted,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
