// Package server exposes the recipe, catalogue and user operations over a
// JSON REST API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/media"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/recipes"
	"droscher.com/Foodgram/pkg/relation"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/shopping"
)

const maxBodyBytes = 10 << 20

var (
	ErrInvalidInput = errors.New("bad request")
	ErrForbidden    = errors.New("you do not have permission to perform this action")
	ErrUserExists   = errors.New("a user with this email or username already exists")
)

type Repository interface {
	recipes.RecipeStore
	recipes.RelationReader
	relation.RelationStore
	shopping.Store
	auth.UserStore

	ListIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error)
	GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error)
	ListRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error)
	DeleteRecipe(ctx context.Context, recipeID uint) error
	GetAuthorRecipes(ctx context.Context, authorID uint, limit int) ([]model.Recipe, error)
	CountAuthorRecipes(ctx context.Context, authorIDs []uint) (map[uint]int64, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	AddUser(ctx context.Context, user model.User) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, int64, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	GetFollowedAuthors(ctx context.Context, userID uint, limit, offset int) ([]*model.User, int64, error)
}

type Server struct {
	conf      *configs.Config
	repo      Repository
	media     media.Store
	auth      *auth.Manager
	composer  *recipes.Composer
	views     *recipes.Views
	favorites *relation.Toggle[*model.Recipe]
	cart      *relation.Toggle[*model.Recipe]
	follows   *relation.Toggle[*model.User]
	shopping  *shopping.Aggregator
	validate  *validator.Validate
	metrics   *metrics
	logger    *zap.Logger
}

func NewServer(conf *configs.Config, repo Repository, store media.Store, logger *zap.Logger) *Server {
	views := recipes.NewViews(repo)

	return &Server{
		conf:      conf,
		repo:      repo,
		media:     store,
		auth:      auth.NewAuthManager(conf, repo, logger),
		composer:  recipes.NewComposer(repo, views, logger),
		views:     views,
		favorites: relation.NewToggle(model.FavoriteRelation, repo, repo.GetRecipeByID, logger),
		cart:      relation.NewToggle(model.ShoppingCartRelation, repo, repo.GetRecipeByID, logger),
		follows:   relation.NewToggle(model.FollowRelation, repo, repo.GetUserByID, logger),
		shopping: shopping.NewAggregator(repo, shopping.Options{
			Header:      conf.Shopping.Header,
			Placeholder: conf.Shopping.Placeholder,
		}, logger),
		validate: newValidator(),
		metrics:  newMetrics(),
		logger:   logger,
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: malformed JSON body: %w", ErrInvalidInput, err)
	}

	if err := s.validate.Struct(target); err != nil {
		return validationError(err)
	}

	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("error encoding response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

type errorResponse struct {
	Errors string `json:"errors"`
}

// writeError maps err onto a status code. Anything unexpected is logged and
// reported as a bare 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("error handling request",
			zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	}

	s.writeJSON(w, status, errorResponse{Errors: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, auth.ErrUnauthenticated.Error()
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, ErrForbidden.Error()
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, recipes.ErrDuplicateName):
		return http.StatusBadRequest, recipes.ErrDuplicateName.Error()
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusBadRequest, repository.ErrDuplicate.Error()
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrUserExists),
		errors.Is(err, media.ErrInvalidImage),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, relation.ErrAlreadyExists),
		errors.Is(err, relation.ErrNotMember),
		errors.Is(err, relation.ErrSelfReference),
		errors.Is(err, recipes.ErrInvalidRecipe),
		errors.Is(err, recipes.ErrInvalidTags),
		errors.Is(err, recipes.ErrInvalidIngredients):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}

// validationError flattens validator failures into one message naming every
// offending field.
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}

		fields = append(fields, fmt.Sprintf("%s: %s", fieldErr.Field(), rule))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, "; "))
}
