package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/troca-livros/backend/internal/auth"
	"github.com/troca-livros/backend/internal/books"
	"github.com/troca-livros/backend/internal/config"
	"github.com/troca-livros/backend/internal/points"
	"github.com/troca-livros/backend/internal/server"
	"github.com/troca-livros/backend/internal/store"
	"github.com/troca-livros/backend/internal/trade"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── Entity store ─────────────────────────────────────────
	var eng store.Engine
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()

		pg := store.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		eng = pg
		log.Printf("using postgres entity store")
	} else {
		eng = store.NewMemoryStore()
		log.Printf("using in-memory entity store (state is lost on restart)")
	}

	if cfg.SeedData {
		if err := store.Seed(ctx, eng); err != nil {
			log.Fatalf("seed sample data: %v", err)
		}
	}

	// ── Sessions ─────────────────────────────────────────────
	var sessions auth.Sessions
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		sessions = auth.NewRedisSessions(rdb)
	} else {
		sessions = auth.NewMemorySessions()
	}

	// ── Services & handlers ──────────────────────────────────
	authHandler := auth.NewHandler(auth.NewService(eng), sessions)
	booksHandler := books.NewHandler(books.NewService(eng))
	tradeHandler := trade.NewHandler(trade.NewService(eng))
	pointsHandler := points.NewHandler(points.NewService(eng))

	router := server.New(server.Deps{
		Auth:           authHandler,
		Books:          booksHandler,
		Trades:         tradeHandler,
		Points:         pointsHandler,
		Sessions:       sessions,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Book exchange API listening on :%s", cfg.Port)
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
