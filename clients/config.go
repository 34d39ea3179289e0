// Package clients provides HTTP adapters for the external collaborators:
// the estimation service, the learning endpoint, the project store, the
// document service, and the geocoder.
package clients

import "os"

// Config holds the external service endpoints and session identity, read
// from the environment (main loads .env first).
type Config struct {
	EstimationURL string
	LearningURL   string
	ProjectsURL   string
	DocumentsURL  string // empty selects the local PDF renderer
	GeocodeURL    string
	UserID        string
	EmailFrom     string
}

// LoadConfig reads the configuration from environment variables, applying
// development defaults for the required services.
func LoadConfig() Config {
	return Config{
		EstimationURL: getenv("ESTIMATION_URL", "http://localhost:8090"),
		LearningURL:   getenv("LEARNING_URL", "http://localhost:8090"),
		ProjectsURL:   getenv("PROJECTS_URL", "http://localhost:8091"),
		DocumentsURL:  os.Getenv("DOCUMENTS_URL"),
		GeocodeURL:    getenv("GEOCODE_URL", "https://nominatim.openstreetmap.org"),
		UserID:        os.Getenv("QUOTE_USER_ID"),
		EmailFrom:     getenv("EMAIL_FROM", "quotes@localhost"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
