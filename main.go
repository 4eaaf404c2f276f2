package main

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"
    "go.mongodb.org/mongo-driver/mongo/readpref"

    "github.com/skyallone/project07/chatbot"
    "github.com/skyallone/project07/config"
    "github.com/skyallone/project07/handlers"
    "github.com/skyallone/project07/middleware"
    "github.com/skyallone/project07/transit"
)

type HealthResponse struct {
    Status      string `json:"status"`
    DBStatus    string `json:"db_status"`
    MongoStatus string `json:"mongo_status"`
    Error       string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{Status: "ok"}

    if config.DB == nil {
        response.Status = "error"
        response.DBStatus = "not_initialized"
    } else if err := config.DB.Ping(); err != nil {
        response.Status = "error"
        response.DBStatus = "connection_error"
        response.Error = err.Error()
    } else {
        response.DBStatus = "connected"
    }

    if config.MongoClient == nil {
        response.Status = "error"
        response.MongoStatus = "not_initialized"
    } else {
        ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
        defer cancel()
        if err := config.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
            response.Status = "error"
            response.MongoStatus = "connection_error"
            if response.Error == "" {
                response.Error = err.Error()
            }
        } else {
            response.MongoStatus = "connected"
        }
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }
    config.LoadAppConfig()

    log.Println("Initializing PostgreSQL database...")
    if err := config.InitDBWithRetry(5); err != nil {
        log.Fatalf("Failed to initialize PostgreSQL: %v", err)
    }
    defer config.CloseDB()

    log.Println("Initializing MongoDB...")
    if err := config.InitMongo(); err != nil {
        log.Fatalf("Failed to initialize MongoDB: %v", err)
    }
    defer config.CloseMongo()

    config.InitCache()

    if err := transit.LoadTerminals(config.App.TerminalDataPath); err != nil {
        log.Fatalf("Failed to load terminal data: %v", err)
    }

    transitSvc := transit.NewService(transit.NewClient(config.App.TagoAPIKey, config.App.ExpBusAPIKey))
    responder := chatbot.NewResponder(transitSvc, chatbot.NewGeminiClient(config.App.GeminiAPIKey))
    handlers.Init(transitSvc, responder, config.App.SessionSecret)

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://localhost:8080",
            "http://127.0.0.1:3000",
        },
        AllowedMethods: []string{
            "GET", "POST", "PUT", "DELETE", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Authorization",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        AllowCredentials: true,
        MaxAge:           86400,
    })

    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.CompressHandler)

    registerRoutes(r)
    log.Println("Routes registered successfully")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + config.App.Port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)
    go func() {
        log.Printf("Starting server on port %s...", config.App.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            serverErrors <- err
        }
    }()

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(r *mux.Router) {
    // Transit search
    r.HandleFunc("/search_transportation", handlers.SearchTransportation).Methods("POST")
    r.HandleFunc("/api/search_from_favorite", handlers.SearchFromFavorite).Methods("POST")
    r.HandleFunc("/api/stations", handlers.GetStations).Methods("GET")
    r.HandleFunc("/api/bus_terminals", handlers.GetBusTerminals).Methods("GET")
    r.HandleFunc("/redirect_booking", handlers.RedirectBooking).Methods("GET")

    // Chatbot
    r.HandleFunc("/api/chatbot", handlers.ChatbotAPI).Methods("POST")
    r.HandleFunc("/api/chat_history", handlers.GetChatHistory).Methods("GET")

    // Favorites
    r.HandleFunc("/api/save_favorite", handlers.SaveFavorite).Methods("POST")
    r.HandleFunc("/api/favorite/{id:[0-9]+}", handlers.UpdateFavorite).Methods("PUT")
    r.HandleFunc("/api/favorite/{id:[0-9]+}", handlers.DeleteFavorite).Methods("DELETE")

    // Accounts
    r.HandleFunc("/register", handlers.Register).Methods("POST")
    r.HandleFunc("/login", handlers.Login).Methods("POST")
    r.HandleFunc("/logout", handlers.Logout).Methods("POST")
    r.HandleFunc("/mypage", handlers.MyPage).Methods("GET")
    r.HandleFunc("/update_profile", handlers.UpdateProfile).Methods("POST")
    r.HandleFunc("/change_password", handlers.ChangePassword).Methods("POST")

    // Operational
    r.HandleFunc("/api/admin/clear_cache", handlers.ResetCaches).Methods("POST")

    // Health checks
    api := r.PathPrefix("/api/v1").Subrouter()
    api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    }).Methods("GET")
    api.HandleFunc("/health/detailed", healthCheck).Methods("GET")
}
