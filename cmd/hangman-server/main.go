// cmd/hangman-server/main.go
//
// Server entrypoint: loads env config, the word source, and the SQLite
// database, then serves the HTTP API.
//
// Environment variables:
//   PORT            listen port (default 8080)
//   LOG_LEVEL       zerolog level (default info)
//   WORDS_FILE      path to a word-list file (embedded list if unset)
//   DATABASE_PATH   SQLite file (default ./data/hangman.db)
//   MIGRATIONS_DIR  directory of *.sql migrations (default ./sql)

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zak213934-a11y/hangman/internal/db"
	"github.com/zak213934-a11y/hangman/internal/httpserver"
	"github.com/zak213934-a11y/hangman/internal/store"
	"github.com/zak213934-a11y/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src := words.Embedded()
	if path := os.Getenv("WORDS_FILE"); path != "" {
		var err error
		src, err = words.Load(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load word list")
		}
	}
	log.Info().Int("words", src.Len()).Msg("word source ready")

	d, err := db.Open(getEnv("DATABASE_PATH", "./data/hangman.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := db.Migrate(d, getEnv("MIGRATIONS_DIR", "./sql")); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	srv := httpserver.New(store.NewMemoryStore(), d, src, nil)
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting hangman-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
