package app

import (
	"fmt"

	credentialsHTTP "github.com/allisson/filebucket/internal/credentials/http"
	credentialsService "github.com/allisson/filebucket/internal/credentials/service"
	credentialsUseCase "github.com/allisson/filebucket/internal/credentials/usecase"
	tokenService "github.com/allisson/filebucket/internal/token/service"
)

// CredentialUseCase returns the credential use case, wrapped with business metrics.
func (c *Container) CredentialUseCase() (credentialsUseCase.CredentialUseCase, error) {
	var err error
	c.credentialUseCaseInit.Do(func() {
		c.credentialUseCase, err = c.initCredentialUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialUseCase, nil
}

// CredentialHandler returns the HTTP handler for credential issuance and
// token-gated asset serving.
func (c *Container) CredentialHandler() (*credentialsHTTP.CredentialHandler, error) {
	var err error
	c.credentialHandlerInit.Do(func() {
		c.credentialHandler, err = c.initCredentialHandler()
		if err != nil {
			c.initErrors["credentialHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialHandler"]; exists {
		return nil, storedErr
	}
	return c.credentialHandler, nil
}

// initCredentialUseCase creates the credential use case with its dependencies.
// The secret use case serves as the secret resolver so lookup goes through
// value encryption; the bucket and asset repositories serve as the scoped
// getters.
func (c *Container) initCredentialUseCase() (credentialsUseCase.CredentialUseCase, error) {
	secretUseCase, err := c.SecretUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret use case for credential use case: %w", err)
	}

	bucketRepo, err := c.BucketRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket repository for credential use case: %w", err)
	}

	assetRepo, err := c.AssetRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset repository for credential use case: %w", err)
	}

	cipher, err := c.Cipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher for credential use case: %w", err)
	}

	fileStore, err := c.FileStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get file store for credential use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for credential use case: %w", err)
	}

	useCase := credentialsUseCase.NewCredentialUseCase(
		secretUseCase,
		bucketRepo,
		assetRepo,
		credentialsService.NewPayloadCodec(cipher),
		tokenService.NewCodec(),
		fileStore,
		credentialsUseCase.CredentialConfig{
			ReadTokenDefaultTTL: c.config.ReadTokenDefaultTTL,
			SignedURLMinTTL:     c.config.SignedURLMinTTL,
			SignedURLMaxTTL:     c.config.SignedURLMaxTTL,
		},
	)

	return credentialsUseCase.NewCredentialUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCredentialHandler creates the credential HTTP handler.
func (c *Container) initCredentialHandler() (*credentialsHTTP.CredentialHandler, error) {
	credentialUseCase, err := c.CredentialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential use case for credential handler: %w", err)
	}

	return credentialsHTTP.NewCredentialHandler(credentialUseCase, c.Logger()), nil
}
