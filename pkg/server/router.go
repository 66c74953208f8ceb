package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
)

// ServiceName is reported by the gRPC health checker.
const ServiceName = "foodgram.v1.FoodgramService"

// Routes builds the REST API. Paths are matched with or without a trailing
// slash.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.instrument)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.auth.Authenticate)

		r.Route("/auth/token", func(r chi.Router) {
			r.With(httprate.LimitByIP(s.conf.Server.LoginRatePerMin, time.Minute)).Post("/login", s.Login)
			r.With(auth.RequireUser).Post("/logout", s.Logout)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", s.ListIngredients)
			r.Get("/{id}", s.GetIngredient)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", s.ListTags)
			r.Get("/{id}", s.GetTag)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", s.ListRecipes)
			r.Get("/{id}", s.GetRecipe)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUser)

				r.Post("/", s.CreateRecipe)
				r.Patch("/{id}", s.UpdateRecipe)
				r.Delete("/{id}", s.DeleteRecipe)
				r.Get("/download_shopping_cart", s.DownloadShoppingCart)
				r.Post("/{id}/favorite", s.AddFavorite)
				r.Delete("/{id}/favorite", s.RemoveFavorite)
				r.Post("/{id}/shopping_cart", s.AddToShoppingCart)
				r.Delete("/{id}/shopping_cart", s.RemoveFromShoppingCart)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", s.RegisterUser)
			r.Get("/", s.ListUsers)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUser)

				r.Get("/me", s.Me)
				r.Post("/set_password", s.SetPassword)
				r.Get("/subscriptions", s.ListSubscriptions)
				r.Post("/{id}/subscribe", s.Subscribe)
				r.Delete("/{id}/subscribe", s.Unsubscribe)
			})

			r.Get("/{id}", s.GetUser)
		})
	})

	if local, ok := s.media.(interface{ Directory() string }); ok {
		prefix := "/" + strings.Trim(s.conf.Media.BaseURL, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(local.Directory()))))
	}

	return r
}

// Handler combines the REST API with metrics and the gRPC health and
// reflection services, behind CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", s.Routes())
	mux.Handle("/metrics", s.metrics.handler())

	options := connect.WithInterceptors(s.logCalls())

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker(ServiceName)
	mux.Handle(grpchealth.NewHandler(checker, options))
	mux.Handle(grpcreflect.NewHandlerV1(reflector, options))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector, options))

	return s.cors().Handler(mux)
}

// cors allows the configured origins. Clients authenticate with bearer
// tokens, never cookies, so credentialed requests are not enabled.
func (s *Server) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: s.conf.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-requested-with",
		},
		ExposedHeaders: []string{
			"content-disposition",
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
		},
		MaxAge: 86400, // 24 hours
	})
}

// logCalls records each unary gRPC call at debug level.
func (s *Server) logCalls() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			s.logger.Debug("grpc call",
				zap.String("procedure", req.Spec().Procedure),
				zap.String("peer", req.Peer().Addr),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err))

			return res, err
		}
	}
}
