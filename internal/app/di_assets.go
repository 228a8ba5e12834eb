package app

import (
	"fmt"

	assetsHTTP "github.com/allisson/filebucket/internal/assets/http"
	assetsRepository "github.com/allisson/filebucket/internal/assets/repository"
	assetsUseCase "github.com/allisson/filebucket/internal/assets/usecase"
)

// AssetRepository returns the asset repository based on database driver.
func (c *Container) AssetRepository() (assetsUseCase.AssetRepository, error) {
	var err error
	c.assetRepoInit.Do(func() {
		c.assetRepo, err = c.initAssetRepository()
		if err != nil {
			c.initErrors["assetRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetRepo"]; exists {
		return nil, storedErr
	}
	return c.assetRepo, nil
}

// AssetUseCase returns the asset use case.
func (c *Container) AssetUseCase() (assetsUseCase.AssetUseCase, error) {
	var err error
	c.assetUseCaseInit.Do(func() {
		c.assetUseCase, err = c.initAssetUseCase()
		if err != nil {
			c.initErrors["assetUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetUseCase"]; exists {
		return nil, storedErr
	}
	return c.assetUseCase, nil
}

// AssetHandler returns the HTTP handler for asset operations.
func (c *Container) AssetHandler() (*assetsHTTP.AssetHandler, error) {
	var err error
	c.assetHandlerInit.Do(func() {
		c.assetHandler, err = c.initAssetHandler()
		if err != nil {
			c.initErrors["assetHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetHandler"]; exists {
		return nil, storedErr
	}
	return c.assetHandler, nil
}

// initAssetRepository creates the asset repository based on the database driver.
func (c *Container) initAssetRepository() (assetsUseCase.AssetRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for asset repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return assetsRepository.NewPostgreSQLAssetRepository(db), nil
	case "mysql":
		return assetsRepository.NewMySQLAssetRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAssetUseCase creates the asset use case with its dependencies. The
// bucket repository serves as the bucket getter enforcing upload policy.
func (c *Container) initAssetUseCase() (assetsUseCase.AssetUseCase, error) {
	assetRepo, err := c.AssetRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset repository for asset use case: %w", err)
	}

	bucketRepo, err := c.BucketRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket repository for asset use case: %w", err)
	}

	fileStore, err := c.FileStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get file store for asset use case: %w", err)
	}

	return assetsUseCase.NewAssetUseCase(
		assetRepo,
		bucketRepo,
		fileStore,
		c.config.DefaultMaxFileSize,
		c.Logger(),
	), nil
}

// initAssetHandler creates the asset HTTP handler.
func (c *Container) initAssetHandler() (*assetsHTTP.AssetHandler, error) {
	assetUseCase, err := c.AssetUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset use case for asset handler: %w", err)
	}

	return assetsHTTP.NewAssetHandler(assetUseCase, c.Logger()), nil
}
