package app

import "os"

const (
	DefaultComicsDir = "./comics"
	DefaultPort      = "8080"
)

// ComicsDirFromEnv returns $COMICS_DIR, or DefaultComicsDir when unset.
func ComicsDirFromEnv() string {
	return envOr("COMICS_DIR", DefaultComicsDir)
}

// PortFromEnv returns $PORT, or DefaultPort when unset.
func PortFromEnv() string {
	return envOr("PORT", DefaultPort)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
