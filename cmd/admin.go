package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
)

type CreateAdminCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
	Email      string `help:"Email address used to log in" required:""`
	Username   string `help:"Public user name"             required:""`
	Password   string `help:"Initial password"             required:""`
}

func (c *CreateAdminCmd) Run(_ *Context) error {
	logger := commandLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	admin, err := newAdmin(c.Email, c.Username, c.Password)
	if err != nil {
		return err
	}

	repo, err := openRepository(c.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	created, err := repo.AddUser(context.Background(), admin)
	if err != nil {
		logger.Error("error creating admin", zap.String("email", c.Email), zap.Error(err))

		return err
	}

	logger.Info("admin created", zap.Uint("id", created.ID), zap.String("email", created.Email))

	return nil
}

func newAdmin(email, username, password string) (model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	return model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}, nil
}
