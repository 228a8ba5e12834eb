package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
	secretsUseCase "github.com/allisson/filebucket/internal/secrets/usecase"
)

// RunCreateSecret creates a new access secret for a user. A non-zero
// expiresInHours sets the expiry relative to now; zero means the secret never
// expires. Outputs the secret id and metadata in either text or JSON format;
// the raw value is never echoed back.
//
// Requirements: Database must be migrated and accessible.
func RunCreateSecret(
	ctx context.Context,
	secretUseCase secretsUseCase.SecretUseCase,
	logger *slog.Logger,
	userIDRaw string,
	value string,
	expiresInHours int64,
	validationURI string,
	format string,
	io IOTuple,
) error {
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	logger.Info("creating new secret", slog.String("user_id", userID.String()))

	var expiresAt *time.Time
	if expiresInHours > 0 {
		t := time.Now().UTC().Add(time.Duration(expiresInHours) * time.Hour)
		expiresAt = &t
	}

	var validationURIPtr *string
	if validationURI != "" {
		validationURIPtr = &validationURI
	}

	secret, err := secretUseCase.Create(ctx, userID, value, expiresAt, validationURIPtr)
	if err != nil {
		return fmt.Errorf("failed to create secret: %w", err)
	}

	if format == "json" {
		outputSecretJSON(secret, io.Writer)
	} else {
		outputSecretText(secret, io.Writer)
	}

	logger.Info("secret created successfully",
		slog.String("secret_id", secret.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return nil
}

// outputSecretText outputs the result in human-readable text format.
func outputSecretText(secret *secretsDomain.Secret, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nSecret created successfully!")
	_, _ = fmt.Fprintf(writer, "Secret ID: %s\n", secret.ID.String())
	if secret.ExpiresAt != nil {
		_, _ = fmt.Fprintf(writer, "Expires at: %s\n", secret.ExpiresAt.Format(time.RFC3339))
	} else {
		_, _ = fmt.Fprintln(writer, "Expires at: never")
	}
}

// outputSecretJSON outputs the result in JSON format for machine consumption.
func outputSecretJSON(secret *secretsDomain.Secret, writer io.Writer) {
	result := map[string]string{
		"secret_id":  secret.ID.String(),
		"expires_at": "",
	}
	if secret.ExpiresAt != nil {
		result["expires_at"] = secret.ExpiresAt.Format(time.RFC3339)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
