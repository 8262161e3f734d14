package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// devJWTSecret is only ever used outside the "prod" environment.  It exists
// so that local development works without a .env file; a production process
// started without JWT_SECRET refuses to boot instead of silently signing
// tokens with a value that ships in the source tree.
const devJWTSecret = "dev-only-insecure-secret"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    DBUser        string // database username
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    JWTSecret     string // secret used to sign session tokens
    TokenTTLHours int    // session token time‑to‑live in hours
    BcryptCost    int    // bcrypt cost for password hashing
    GeminiAPIKey  string // API key for the generative‑text service (optional)
    GeminiModel   string // model name used for text rewriting
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    cfg := Config{
        Env:           must("APP_ENV"),                // environment (dev/test/prod)
        Port:          getenv("APP_PORT", "5000"),     // port to bind the HTTP server
        DBUser:        must("DB_USER"),                // database user
        DBPass:        os.Getenv("DB_PASS"),           // database password (empty allowed)
        DBHost:        must("DB_HOST"),                // database host
        DBPort:        must("DB_PORT"),                // database port
        DBName:        must("DB_NAME"),                // database name
        JWTSecret:     os.Getenv("JWT_SECRET"),        // secret used for signing session tokens
        TokenTTLHours: envInt("TOKEN_TTL_HOURS", 168), // session token validity window
        BcryptCost:    envInt("BCRYPT_COST", 10),      // bcrypt cost factor
        GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),    // rewrite proxy credential
        GeminiModel:   getenv("GEMINI_MODEL", "gemini-2.0-flash"), // rewrite model
    }

    // The signing secret must come from the environment in production.  Any
    // other environment falls back to a development constant so the server
    // still starts, but the substitution is logged loudly.
    if cfg.JWTSecret == "" {
        if cfg.Env == "prod" {
            log.Fatal("JWT_SECRET is required when APP_ENV=prod")
        }
        log.Printf("WARNING: JWT_SECRET not set, using insecure development secret (env=%s)", cfg.Env)
        cfg.JWTSecret = devJWTSecret
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// envInt reads an integer environment variable and converts it to an
// integer, returning def when the variable is unset.  An unparsable value
// is a fatal configuration error.
func envInt(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
