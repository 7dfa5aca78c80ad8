package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devashish/pokedex-api/internal/auth"
	"github.com/devashish/pokedex-api/internal/config"
	"github.com/devashish/pokedex-api/internal/pokedex"
	"github.com/devashish/pokedex-api/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── MongoDB (only when a selected backend needs it) ──────
	var mongoDB *mongo.Database
	if cfg.StorageBackend == "mongo" || cfg.UsersBackend == "mongo" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("mongo connect: %v", err)
		}
		defer client.Disconnect(ctx)
		mongoDB = client.Database(cfg.MongoDB)
	}

	// ── Record store ─────────────────────────────────────────
	var records pokedex.RecordStore
	switch cfg.StorageBackend {
	case "mongo":
		ms := store.NewMongoStore(mongoDB)
		if err := ms.EnsureIndexes(ctx); err != nil {
			log.Fatalf("mongo indexes: %v", err)
		}
		records = ms
	case "file":
		fs, err := store.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatalf("file store: %v", err)
		}
		records = fs
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	// ── Credential store ─────────────────────────────────────
	var users auth.UserStore
	switch cfg.UsersBackend {
	case "mongo":
		us := store.NewMongoUserStore(mongoDB)
		if err := us.EnsureIndexes(ctx); err != nil {
			log.Fatalf("mongo user indexes: %v", err)
		}
		users = us
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		pgStore := store.NewPostgresUserStore(pool)
		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		users = pgStore
	default:
		log.Fatalf("unknown USERS_BACKEND %q", cfg.UsersBackend)
	}

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(users)
	pokedexHandler := pokedex.NewHandler(records)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Pokedex API"))
	})

	r.Route("/api/pokemons", func(r chi.Router) {
		r.Get("/", pokedexHandler.List)
		r.Post("/", pokedexHandler.Create)
		r.Get("/{id}", pokedexHandler.Get)
		r.Put("/{id}", pokedexHandler.Update)
		r.Delete("/{id}", pokedexHandler.Delete)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Handle("/assets/*", http.StripPrefix("/assets/",
		http.FileServer(http.Dir(cfg.AssetsDir))))

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Pokedex API listening on :%s (records=%s, users=%s)",
			cfg.Port, cfg.StorageBackend, cfg.UsersBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
