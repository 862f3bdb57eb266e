// Package main provides a CLI tool for minting embed capability tokens
// without going through the admin API, for local development and support
// workflows. The signing secret must match the server's.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"pawprint/internal/embed"
	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
	"pawprint/pkg/secrets"
)

type tokenOutput struct {
	Token     string `json:"token"`
	OrgID     string `json:"org_id"`
	TenantID  string `json:"tenant_id"`
	Species   string `json:"species,omitempty"`
	ExpiresAt string `json:"expires_at"`
	Usage     string `json:"usage"`
}

func main() {
	var (
		secret   = flag.String("secret", os.Getenv("PAWPRINT_EMBED_SECRET"), "embed signing secret (or PAWPRINT_EMBED_SECRET)")
		orgArg   = flag.String("org", "", "organization id (uuid)")
		tenant   = flag.String("tenant", "", "tenant id (uuid)")
		species  = flag.String("species", "", "optional species filter: Dog, Cat, or Other")
		ttl      = flag.Duration("ttl", 365*24*time.Hour, "token lifetime")
		hashMode = flag.Bool("hash-admin-key", false, "read an admin key from stdin-like -key and print its bcrypt hash")
		key      = flag.String("key", "", "admin key to hash with -hash-admin-key")
	)
	flag.Parse()

	if *hashMode {
		if err := printAdminKeyHash(*key); err != nil {
			fatal(err)
		}
		return
	}

	if *secret == "" {
		fatal(fmt.Errorf("a signing secret is required (-secret or PAWPRINT_EMBED_SECRET)"))
	}

	orgID, err := id.ParseOrgID(*orgArg)
	if err != nil {
		fatal(fmt.Errorf("invalid -org: %w", err))
	}
	tenantID, err := id.ParseTenantID(*tenant)
	if err != nil {
		fatal(fmt.Errorf("invalid -tenant: %w", err))
	}

	issuer := embed.NewIssuer(*secret, *ttl)
	token, err := issuer.Issue(orgID, tenantID, embed.Filters{Species: models.Species(*species)}, *ttl)
	if err != nil {
		fatal(err)
	}

	out := tokenOutput{
		Token:     token,
		OrgID:     orgID.String(),
		TenantID:  tenantID.String(),
		Species:   *species,
		ExpiresAt: time.Now().Add(*ttl).Format(time.RFC3339),
		Usage:     "GET /embed/animals?token=" + token,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatal(err)
	}
}

// printAdminKeyHash emits the bcrypt hash suitable for PAWPRINT_ADMIN_KEY_HASH.
func printAdminKeyHash(key string) error {
	if key == "" {
		return fmt.Errorf("-key is required with -hash-admin-key")
	}
	hash, err := secrets.Hash(key)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "tokengen:", err)
	os.Exit(1)
}
