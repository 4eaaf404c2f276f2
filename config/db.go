package config

import (
    "bufio"
    "context"
    "database/sql"
    "fmt"
    "log"
    "os"
    "strings"
    "time"

    _ "github.com/lib/pq"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
    DB          *sql.DB
    MongoDB     *mongo.Database
    MongoClient *mongo.Client
)

const retryDelay = 5 * time.Second

// LoadEnv loads environment variables from a .env file if one is present.
func LoadEnv() error {
    possiblePaths := []string{
        ".env",
        "../.env",
        os.Getenv("TRIP_ENV"), // Environment-specified path
    }

    var loadedFile string
    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            log.Printf("Found .env file at: %s", path)
            break
        }
    }

    if loadedFile == "" {
        // No .env file is fine when the environment is already configured.
        return nil
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.TrimSpace(parts[1])
        value = strings.Trim(value, `"'`)
        os.Setenv(key, value)
        if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "secret") && !strings.Contains(strings.ToLower(key), "key") {
            log.Printf("Set environment variable: %s", key)
        }
    }
    return scanner.Err()
}

// InitDBWithRetry attempts to connect to PostgreSQL with retries.
func InitDBWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = InitDB()
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(retryDelay)
    }
    return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
    db, err := sql.Open("postgres", getPostgresConnString())
    if err != nil {
        return fmt.Errorf("error opening database: %v", err)
    }

    db.SetMaxOpenConns(getEnvAsInt("DB_MAX_OPEN_CONNS", 25))
    db.SetMaxIdleConns(getEnvAsInt("DB_MAX_IDLE_CONNS", 5))
    db.SetConnMaxLifetime(5 * time.Minute)

    if err := db.Ping(); err != nil {
        db.Close()
        return fmt.Errorf("error connecting to database: %v", err)
    }

    DB = db
    if err := createTables(); err != nil {
        return fmt.Errorf("error creating tables: %v", err)
    }
    log.Printf("Connected to PostgreSQL at %s:%s", os.Getenv("DB_HOST"), os.Getenv("DB_PORT"))
    return nil
}

// createTables bootstraps the relational schema used by the application.
func createTables() error {
    statements := []string{
        `CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username VARCHAR(80) UNIQUE NOT NULL,
            email VARCHAR(120) UNIQUE NOT NULL,
            name VARCHAR(100),
            phone VARCHAR(20),
            password_hash VARCHAR(128) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
        `CREATE TABLE IF NOT EXISTS favorites (
            id SERIAL PRIMARY KEY,
            user_id INTEGER NOT NULL REFERENCES users(id),
            departure VARCHAR(100) NOT NULL,
            arrival VARCHAR(100) NOT NULL,
            transport_type VARCHAR(50) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (user_id, departure, arrival, transport_type)
        )`,
    }
    for _, stmt := range statements {
        if _, err := DB.Exec(stmt); err != nil {
            return err
        }
    }
    return nil
}

func CloseDB() {
    if DB != nil {
        DB.Close()
    }
}

// InitMongo connects to MongoDB for chat history storage.
func InitMongo() error {
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    client, err := mongo.Connect(ctx, options.Client().ApplyURI(getMongoURI()))
    if err != nil {
        return fmt.Errorf("error connecting to MongoDB: %v", err)
    }
    if err := client.Ping(ctx, readpref.Primary()); err != nil {
        return fmt.Errorf("error pinging MongoDB: %v", err)
    }

    MongoClient = client
    MongoDB = client.Database(getMongoDBName())

    // Chat history is queried newest-first per user.
    idx := mongo.IndexModel{
        Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
    }
    if _, err := MongoDB.Collection("chat_history").Indexes().CreateOne(ctx, idx); err != nil {
        log.Printf("Warning: failed to create chat_history index: %v", err)
    }

    log.Printf("Connected to MongoDB database %q", getMongoDBName())
    return nil
}

func CloseMongo() {
    if MongoClient != nil {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        if err := MongoClient.Disconnect(ctx); err != nil {
            log.Printf("Error disconnecting MongoDB: %v", err)
        }
    }
}
