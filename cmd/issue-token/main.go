// Command issue-token prints an access token for local testing of the finance API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/madrasah-erp/finance/config"
	"github.com/madrasah-erp/finance/internal/integration/adapters"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	userID := pflag.String("user-id", "", "user id placed in the token (random when empty)")
	schoolID := pflag.String("school-id", "", "school id the token is scoped to (required)")
	email := pflag.String("email", "", "email placed in the token")
	ttl := pflag.Duration("ttl", cfg.JWT.AccessTokenExpiry, "token lifetime")
	pflag.Parse()

	if err := run(cfg.JWT.Secret, cfg.JWT.Issuer, *userID, *schoolID, *email, *ttl); err != nil {
		fmt.Fprintln(os.Stderr, "issue-token:", err)
		os.Exit(1)
	}
}

func run(secret, issuer, rawUserID, rawSchoolID, email string, ttl time.Duration) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	school, err := uuid.Parse(rawSchoolID)
	if err != nil {
		return fmt.Errorf("invalid --school-id: %w", err)
	}

	user := uuid.New()
	if rawUserID != "" {
		if user, err = uuid.Parse(rawUserID); err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
	}

	token, expiresAt, err := adapters.NewTokenService(secret, issuer, ttl).GenerateAccessToken(context.Background(), user, school, email)
	if err != nil {
		return err
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "user %s, school %s, expires %s\n", user, school, expiresAt.Format(time.RFC3339))
	return nil
}
