package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,max=150"`
}

type setPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,max=150"`
	CurrentPassword string `json:"current_password" validate:"required"`
}

func (s *Server) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var request registerRequest
	if err := s.decode(w, r, &request); err != nil {
		s.writeError(w, r, err)

		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	user, err := s.repo.AddUser(r.Context(), model.User{
		Email:        request.Email,
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			err = ErrUserExists
		}

		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, createdUserFromModel(user))
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, err := s.requestedPage(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	users, total, err := s.repo.ListUsers(ctx, current.size, current.offset())
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	profiles, err := s.views.Profiles(ctx, auth.UserFromContext(ctx), users)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, paginate(r, current, total, usersFromProfiles(profiles)))
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	profiles, err := s.views.Profiles(ctx, auth.UserFromContext(ctx), []*model.User{user})
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, userFromProfile(profiles[0]))
}

// Me returns the caller's own profile. Users never follow themselves.
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	s.writeJSON(w, http.StatusOK, userFromProfile(model.Profile{User: *user}))
}

func (s *Server) SetPassword(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var request setPasswordRequest
	if err := s.decode(w, r, &request); err != nil {
		s.writeError(w, r, err)

		return
	}

	if !auth.CheckPassword(user.PasswordHash, request.CurrentPassword) {
		s.writeError(w, r, fmt.Errorf("%w: current_password: invalid password", ErrInvalidInput))

		return
	}

	hash, err := auth.HashPassword(request.NewPassword)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	if err := s.repo.UpdatePassword(r.Context(), user.ID, hash); err != nil {
		s.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSubscriptions pages through the authors the caller follows, each with
// up to recipes_limit of their newest recipes.
func (s *Server) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.UserFromContext(ctx)

	current, err := s.requestedPage(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	recipesLimit, err := s.recipesLimit(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	authors, total, err := s.repo.GetFollowedAuthors(ctx, user.ID, current.size, current.offset())
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	authorIDs := make([]uint, 0, len(authors))
	for _, author := range authors {
		authorIDs = append(authorIDs, author.ID)
	}

	counts, err := s.repo.CountAuthorRecipes(ctx, authorIDs)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	results := make([]subscriptionResponse, 0, len(authors))

	for _, author := range authors {
		subscription, err := s.subscription(r, author, recipesLimit, counts[author.ID])
		if err != nil {
			s.writeError(w, r, err)

			return
		}

		results = append(results, subscriptionFromModel(subscription))
	}

	s.writeJSON(w, http.StatusOK, paginate(r, current, total, results))
}

func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authorID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	recipesLimit, err := s.recipesLimit(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	author, err := s.follows.Add(ctx, auth.UserFromContext(ctx), authorID)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	counts, err := s.repo.CountAuthorRecipes(ctx, []uint{author.ID})
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	subscription, err := s.subscription(r, author, recipesLimit, counts[author.ID])
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, subscriptionFromModel(subscription))
}

func (s *Server) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authorID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	if err := s.follows.Remove(ctx, auth.UserFromContext(ctx), authorID); err != nil {
		s.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) subscription(r *http.Request, author *model.User, recipesLimit int, count int64) (model.Subscription, error) {
	authorRecipes, err := s.repo.GetAuthorRecipes(r.Context(), author.ID, recipesLimit)
	if err != nil {
		return model.Subscription{}, err
	}

	return model.Subscription{
		Profile:      model.Profile{User: *author, IsSubscribed: true},
		Recipes:      authorRecipes,
		RecipesCount: count,
	}, nil
}

// recipesLimit reads the recipes_limit query parameter. Zero or absent means
// every recipe is included.
func (s *Server) recipesLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("recipes_limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: invalid recipes_limit %q", ErrInvalidInput, raw)
	}

	return limit, nil
}
