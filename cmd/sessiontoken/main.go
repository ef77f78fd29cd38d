// Command sessiontoken mints a dashboard session token signed with
// SESSION_SECRET, for operators and local testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-talent-intake/config"
	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/auth"
)

func main() {
	subject := flag.String("subject", "", "admin user ID to embed as the token subject")
	role := flag.String("role", domain.RoleAdmin, "admin or super_admin")
	ttl := flag.Duration("ttl", 0, "token lifetime (default SESSION_TTL_MINUTES)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "sessiontoken: -subject is required")
		os.Exit(2)
	}
	if !domain.IsDashboardRole(*role) {
		fmt.Fprintf(os.Stderr, "sessiontoken: role %q cannot open the dashboard\n", *role)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = time.Duration(cfg.SessionTTLMinutes) * time.Minute
	}

	sessions, err := auth.NewManager(cfg.SessionSecret, lifetime, cfg.SessionIssuer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	token, expiresAt, err := sessions.Issue(*subject, *role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Subject: %s\nRole: %s\nExpires: %s\nToken: %s\n", *subject, *role, expiresAt.Format(time.RFC3339), token)
}
