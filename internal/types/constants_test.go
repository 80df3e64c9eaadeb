package types

import (
	"slices"
	"testing"
)

func TestAllowedOriginsDefaults(t *testing.T) {
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	origins := AllowedOrigins()

	if !slices.Equal(origins, defaultOrigins) {
		t.Errorf("expected defaults %v, got %v", defaultOrigins, origins)
	}
}

// The environment is read on each call, so origins loaded from a .env file
// after package init are still picked up.
func TestAllowedOriginsFromEnvironment(t *testing.T) {
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	before := AllowedOrigins()
	if slices.Contains(before, "https://app.example.com") {
		t.Fatal("CLIENT_URL unexpectedly set before the test")
	}

	t.Setenv("CLIENT_URL", "https://app.example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	origins := AllowedOrigins()

	for _, want := range []string{
		"http://localhost:3000",
		"https://app.example.com",
		"https://a.example.com",
		"https://b.example.com",
	} {
		if !slices.Contains(origins, want) {
			t.Errorf("expected %q in origins, got %v", want, origins)
		}
	}

	if slices.Contains(origins, "") {
		t.Errorf("expected empty entries to be dropped, got %v", origins)
	}
}
