package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"notes-app/auth"
	"notes-app/config"
	"notes-app/db"
	"notes-app/handlers"
	appmw "notes-app/middleware"
	"notes-app/store"
)

func newRouter(authHandler *handlers.AuthHandler, noteHandler *handlers.NoteHandler, tokens *auth.TokenService) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/health", handlers.Health)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/signinwithgoogle", authHandler.GoogleSignIn)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(tokens))
		r.Get("/auth/me", authHandler.Me)
		r.Get("/note/getallnotes", noteHandler.GetAll)
		r.Get("/note/singlenote/{id}", noteHandler.GetSingle)
		r.Post("/note/createNote", noteHandler.Create)
		r.Put("/note/singlenote/{id}", noteHandler.Update)
		r.Delete("/note/singlenote/{id}", noteHandler.Delete)
	})

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("MongoDB disconnect error:", err)
		}
	}()
	log.Println("Connected to MongoDB")

	database := client.Database(cfg.MongoDB)
	users := store.NewMongoUserStore(database)
	notes := store.NewMongoNoteStore(database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal("Error creating user indexes:", err)
	}
	cancel()

	tokens := auth.NewTokenService(cfg.JWTSecret)
	authHandler := &handlers.AuthHandler{
		Users:  users,
		Tokens: tokens,
		Google: auth.NewTokenInfoVerifier(cfg.GoogleClientID),
	}
	noteHandler := &handlers.NoteHandler{Notes: notes}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(authHandler, noteHandler, tokens),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(srv.ListenAndServe())
}
