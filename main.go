package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	auth "Stairs/internal/auth"
	batch "Stairs/internal/calc/batch"
	book "Stairs/internal/calc/book"
	detailed "Stairs/internal/calc/detailed"
	importer "Stairs/internal/calc/importer"
	reply "Stairs/internal/calc/reply"
	report "Stairs/internal/calc/report"
	structure "Stairs/internal/calc/structure"
	catalog "Stairs/internal/catalog"
	config "Stairs/internal/config"
	repo "Stairs/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// HandleList registers every API route on router.
func HandleList(router *mux.Router, cfg config.Config, store repo.Repository, log zerolog.Logger) {
	authEnv := &auth.Authenv{JWTkey: cfg.TokenKey, Repo: store, Log: log}
	limiter := auth.NewIPRateLimiter(cfg.RateLimit, cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/catalog/{type:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(mux.Vars(r)["type"])
		t, err := catalog.ParsePartType(n)
		if err != nil {
			http.Error(w, "Unknown part type", http.StatusNotFound)
			return
		}
		reply.JSON(w, catalog.Names(t))
	}).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	structureH := &structure.Handler{Log: log.With().Str("handler", "structure").Logger()}
	detailedH := &detailed.Handler{Log: log.With().Str("handler", "detailed").Logger()}
	bookH := &book.Handler{Log: log.With().Str("handler", "book").Logger()}
	storeH := &book.StoreHandler{Repo: store, Log: log.With().Str("handler", "books").Logger()}
	batchH := &batch.Handler{Log: log.With().Str("handler", "batch").Logger()}
	importH := &importer.Handler{Log: log.With().Str("handler", "import").Logger()}
	reportH := &report.Handler{Log: log.With().Str("handler", "report").Logger()}

	secureApi.HandleFunc("/stair/structure", structureH.Calc).Methods("POST")
	secureApi.HandleFunc("/stair/detailed", detailedH.Calc).Methods("POST")
	secureApi.HandleFunc("/stair/book", bookH.Calc).Methods("POST")
	secureApi.HandleFunc("/stair/book/check", bookH.Check).Methods("POST")
	secureApi.HandleFunc("/stair/book/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/stair/batch", batchH.Structure).Methods("POST")
	secureApi.HandleFunc("/stair/import", importH.Structure).Methods("POST")

	secureApi.HandleFunc("/books", storeH.List).Methods("GET")
	secureApi.HandleFunc("/books", storeH.Save).Methods("POST")
	secureApi.HandleFunc("/books/{id:[0-9]+}", storeH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("configuration")
	}
	log := cfg.Logger(os.Stderr)

	var store repo.Repository
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL is not set, accounts and books are kept in memory")
		store = repo.NewMemory()
	} else {
		db, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database")
		}
		defer db.Close()
		store = repo.NewPostgresUserDB(db)
	}

	router := mux.NewRouter()
	HandleList(router, cfg, store, log)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Str("addr", cfg.Addr).Bool("tls", cfg.TLS()).Msg("starting server")
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	wg.Wait()
	log.Info().Msg("server stopped")
}
