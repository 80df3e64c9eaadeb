package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

const (
	StatusToDo     = "To Do"
	StatusOngoing  = "Ongoing"
	StatusDone     = "Done"
	StatusTesting  = "Testing"
	StatusDeployed = "Deployed"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

var (
	CardStatuses = []string{StatusToDo, StatusOngoing, StatusDone, StatusTesting, StatusDeployed}

	CardPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
)

// AllowedOrigins resolves the CORS origin list from the environment on every
// call. It must not be computed at package init, which runs before main has
// loaded the .env file.
func AllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
