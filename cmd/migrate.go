package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logger := commandLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	repo, err := openRepository(m.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	// recipe_tags carries a composite primary key instead of gorm's implicit join table
	if err := repo.DB.SetupJoinTable(&model.Recipe{}, "Tags", &model.RecipeTag{}); err != nil {
		return err
	}

	err = repo.DB.AutoMigrate(
		&model.User{},
		&model.Tag{}, &model.Ingredient{},
		&model.Recipe{}, &model.RecipeIngredient{}, &model.RecipeTag{},
		&model.Favorite{}, &model.ShoppingCartItem{}, &model.Follow{})
	if err != nil {
		return err
	}

	if err := repo.AddTags(context.Background(), model.DefaultTags); err != nil {
		logger.Error("error seeding tags", zap.Error(err))

		return err
	}

	logger.Info("migrations complete")

	return nil
}

// commandLogger is the logger of one-shot commands.
func commandLogger() *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()

	return logger
}

func openRepository(configFile string, logger *zap.Logger) (*repository.Repository, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, err
	}

	return repo, nil
}
