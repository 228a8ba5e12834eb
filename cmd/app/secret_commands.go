package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/filebucket/cmd/app/commands"
	"github.com/allisson/filebucket/internal/app"
	"github.com/allisson/filebucket/internal/config"
)

func getSecretCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-secret",
			Usage: "Create a new access secret for a user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Owning user ID (UUID)",
				},
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Raw secret value (minimum 8 characters)",
				},
				&cli.IntFlag{
					Name:    "expires-in-hours",
					Aliases: []string{"x"},
					Value:   0,
					Usage:   "Hours until the secret expires (0 for no expiry)",
				},
				&cli.StringFlag{
					Name:  "validation-uri",
					Usage: "Optional URI for out-of-band secret validation",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				secretUseCase, err := container.SecretUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize secret use case: %w", err)
				}

				return commands.RunCreateSecret(
					ctx,
					secretUseCase,
					container.Logger(),
					cmd.String("user-id"),
					cmd.String("value"),
					int64(cmd.Int("expires-in-hours")),
					cmd.String("validation-uri"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "clean-expired-secrets",
			Usage: "Delete secrets whose expiry has passed",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				secretUseCase, err := container.SecretUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize secret use case: %w", err)
				}

				return commands.RunCleanExpiredSecrets(
					ctx,
					secretUseCase,
					container.Logger(),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
