package app

import (
	"fmt"

	bucketsHTTP "github.com/allisson/filebucket/internal/buckets/http"
	bucketsRepository "github.com/allisson/filebucket/internal/buckets/repository"
	bucketsUseCase "github.com/allisson/filebucket/internal/buckets/usecase"
)

// BucketRepository returns the bucket repository based on database driver.
func (c *Container) BucketRepository() (bucketsUseCase.BucketRepository, error) {
	var err error
	c.bucketRepoInit.Do(func() {
		c.bucketRepo, err = c.initBucketRepository()
		if err != nil {
			c.initErrors["bucketRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bucketRepo"]; exists {
		return nil, storedErr
	}
	return c.bucketRepo, nil
}

// BucketUseCase returns the bucket use case.
func (c *Container) BucketUseCase() (bucketsUseCase.BucketUseCase, error) {
	var err error
	c.bucketUseCaseInit.Do(func() {
		c.bucketUseCase, err = c.initBucketUseCase()
		if err != nil {
			c.initErrors["bucketUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bucketUseCase"]; exists {
		return nil, storedErr
	}
	return c.bucketUseCase, nil
}

// BucketHandler returns the HTTP handler for bucket management operations.
func (c *Container) BucketHandler() (*bucketsHTTP.BucketHandler, error) {
	var err error
	c.bucketHandlerInit.Do(func() {
		c.bucketHandler, err = c.initBucketHandler()
		if err != nil {
			c.initErrors["bucketHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bucketHandler"]; exists {
		return nil, storedErr
	}
	return c.bucketHandler, nil
}

// initBucketRepository creates the bucket repository based on the database driver.
func (c *Container) initBucketRepository() (bucketsUseCase.BucketRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for bucket repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return bucketsRepository.NewPostgreSQLBucketRepository(db), nil
	case "mysql":
		return bucketsRepository.NewMySQLBucketRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initBucketUseCase creates the bucket use case with its dependencies. The
// asset repository serves as the asset counter guarding bucket deletion.
func (c *Container) initBucketUseCase() (bucketsUseCase.BucketUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for bucket use case: %w", err)
	}

	bucketRepo, err := c.BucketRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket repository for bucket use case: %w", err)
	}

	assetRepo, err := c.AssetRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset repository for bucket use case: %w", err)
	}

	return bucketsUseCase.NewBucketUseCase(txManager, bucketRepo, assetRepo), nil
}

// initBucketHandler creates the bucket HTTP handler.
func (c *Container) initBucketHandler() (*bucketsHTTP.BucketHandler, error) {
	bucketUseCase, err := c.BucketUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket use case for bucket handler: %w", err)
	}

	return bucketsHTTP.NewBucketHandler(bucketUseCase, c.Logger()), nil
}
