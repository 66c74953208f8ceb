package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/media"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/recipes"
	"droscher.com/Foodgram/pkg/relation"
	"droscher.com/Foodgram/pkg/shopping"
)

type ingredientAmountRequest struct {
	ID     uint `json:"id" validate:"required"`
	Amount int  `json:"amount"`
}

// recipeRequest is the body of both create and update. Tag and ingredient
// rules are checked by the composer so they are reported consistently.
type recipeRequest struct {
	Ingredients []ingredientAmountRequest `json:"ingredients" validate:"dive"`
	Tags        []uint                    `json:"tags"`
	Image       *string                   `json:"image"`
	Name        string                    `json:"name" validate:"required,max=200"`
	Text        string                    `json:"text" validate:"required"`
	CookingTime int                       `json:"cooking_time"`
}

func (r recipeRequest) fields(image *string) recipes.Fields {
	return recipes.Fields{Name: r.Name, Text: r.Text, Image: image, CookingTime: r.CookingTime}
}

func (r recipeRequest) amounts() []recipes.IngredientAmount {
	amounts := make([]recipes.IngredientAmount, 0, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		amounts = append(amounts, recipes.IngredientAmount{IngredientID: ingredient.ID, Amount: ingredient.Amount})
	}

	return amounts
}

func (r recipeRequest) hasImage() bool {
	return r.Image != nil && *r.Image != ""
}

func (s *Server) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewer := auth.UserFromContext(ctx)

	current, err := s.requestedPage(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	filter, err := recipeFilter(r, viewer)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	filter.Limit = current.size
	filter.Offset = current.offset()

	found, total, err := s.repo.ListRecipes(ctx, filter)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	views, err := s.views.Decorate(ctx, viewer, found)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, paginate(r, current, total, recipesFromViews(views)))
}

// recipeFilter reads author, tags, is_favorited and is_in_shopping_cart.
// The relation filters only apply to authenticated viewers.
func recipeFilter(r *http.Request, viewer *model.User) (model.RecipeFilter, error) {
	query := r.URL.Query()
	filter := model.RecipeFilter{TagSlugs: query["tags"]}

	if raw := query.Get("author"); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid author %q", ErrInvalidInput, raw)
		}

		filter.AuthorID = pointy.Uint(uint(authorID))
	}

	if viewer != nil {
		if query.Get("is_favorited") == "1" {
			filter.FavoritedBy = pointy.Uint(viewer.ID)
		}

		if query.Get("is_in_shopping_cart") == "1" {
			filter.InShoppingCartOf = pointy.Uint(viewer.ID)
		}
	}

	return filter, nil
}

func (s *Server) GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipeID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	recipe, err := s.repo.GetRecipeByID(ctx, recipeID)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	views, err := s.views.Decorate(ctx, auth.UserFromContext(ctx), []*model.Recipe{recipe})
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, recipeFromView(views[0]))
}

func (s *Server) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.UserFromContext(ctx)

	var request recipeRequest
	if err := s.decode(w, r, &request); err != nil {
		s.writeError(w, r, err)

		return
	}

	if !request.hasImage() {
		s.writeError(w, r, fmt.Errorf("%w: image: required", ErrInvalidInput))

		return
	}

	imageURL, err := s.storeImage(ctx, *request.Image)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	view, err := s.composer.Create(ctx, user, request.fields(&imageURL), request.amounts(), request.Tags)
	if err != nil {
		s.discardImage(ctx, &imageURL)
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, recipeFromView(view))
}

// UpdateRecipe replaces the recipe's fields, ingredients and tags. The image
// is kept unless a new one is sent.
func (s *Server) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.UserFromContext(ctx)

	existing, err := s.ownedRecipe(r, user)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	var request recipeRequest
	if err := s.decode(w, r, &request); err != nil {
		s.writeError(w, r, err)

		return
	}

	image := existing.Image

	var uploaded *string

	if request.hasImage() {
		imageURL, err := s.storeImage(ctx, *request.Image)
		if err != nil {
			s.writeError(w, r, err)

			return
		}

		image = &imageURL
		uploaded = &imageURL
	}

	view, err := s.composer.Replace(ctx, user, existing, request.fields(image), request.amounts(), request.Tags)
	if err != nil {
		s.discardImage(ctx, uploaded)
		s.writeError(w, r, err)

		return
	}

	if uploaded != nil {
		s.discardImage(ctx, existing.Image)
	}

	s.writeJSON(w, http.StatusOK, recipeFromView(view))
}

func (s *Server) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := s.ownedRecipe(r, auth.UserFromContext(ctx))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	if err := s.repo.DeleteRecipe(ctx, existing.ID); err != nil {
		s.writeError(w, r, err)

		return
	}

	s.discardImage(ctx, existing.Image)

	w.WriteHeader(http.StatusNoContent)
}

// ownedRecipe loads the recipe in the path and checks that user may change it.
func (s *Server) ownedRecipe(r *http.Request, user *model.User) (*model.Recipe, error) {
	recipeID, err := pathID(r)
	if err != nil {
		return nil, err
	}

	recipe, err := s.repo.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		return nil, err
	}

	if user == nil || (user.ID != recipe.AuthorID && !user.IsAdmin()) {
		return nil, ErrForbidden
	}

	return recipe, nil
}

func (s *Server) storeImage(ctx context.Context, dataURI string) (string, error) {
	image, err := media.DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	return media.SaveImage(ctx, s.media, image)
}

// discardImage removes a stored image. Failures only leave an orphaned file
// behind, so they are logged and otherwise ignored.
func (s *Server) discardImage(ctx context.Context, imageURL *string) {
	if imageURL == nil {
		return
	}

	key := s.media.Key(*imageURL)
	if key == "" {
		return
	}

	if err := s.media.Delete(ctx, key); err != nil {
		s.logger.Warn("error deleting image", zap.String("key", key), zap.Error(err))
	}
}

func (s *Server) AddFavorite(w http.ResponseWriter, r *http.Request) {
	s.addRecipeRelation(w, r, s.favorites)
}

func (s *Server) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	s.removeRecipeRelation(w, r, s.favorites)
}

func (s *Server) AddToShoppingCart(w http.ResponseWriter, r *http.Request) {
	s.addRecipeRelation(w, r, s.cart)
}

func (s *Server) RemoveFromShoppingCart(w http.ResponseWriter, r *http.Request) {
	s.removeRecipeRelation(w, r, s.cart)
}

func (s *Server) addRecipeRelation(w http.ResponseWriter, r *http.Request, toggle *relation.Toggle[*model.Recipe]) {
	recipeID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	recipe, err := toggle.Add(r.Context(), auth.UserFromContext(r.Context()), recipeID)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, shortRecipeFromModel(recipe))
}

func (s *Server) removeRecipeRelation(w http.ResponseWriter, r *http.Request, toggle *relation.Toggle[*model.Recipe]) {
	recipeID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	if err := toggle.Remove(r.Context(), auth.UserFromContext(r.Context()), recipeID); err != nil {
		s.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	report, err := s.shopping.Report(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", shopping.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", shopping.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}
