package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/middleware"
	"github.com/kingrain94/country-gallery-api/pkg/utils"
)

// Prints SQL that seeds an access code for a country and, optionally, the
// admin delete code. With -country-id it also prints a session token for
// that country.
//
//	go run scripts/seed_codes.go -country norway -code fjord-2026 -expires 72h -max-uses 50
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	slug := flag.String("country", "", "Country slug the access code belongs to")
	code := flag.String("code", "", "Plaintext access code")
	expires := flag.String("expires", "", "Expiry as RFC3339, YYYY-MM-DD or a duration such as 72h")
	maxUses := flag.Int("max-uses", -1, "Maximum number of batches, -1 for unlimited")
	adminCode := flag.String("admin-code", "", "Plaintext admin delete code")
	countryID := flag.String("country-id", "", "Country ID to issue a session token for")
	flag.Parse()

	if *code == "" && *adminCode == "" && *countryID == "" {
		log.Fatal("Nothing to do: pass -code, -admin-code or -country-id")
	}

	if *code != "" {
		if *slug == "" {
			log.Fatal("-country is required with -code")
		}
		expiresAt, err := utils.ParseExpiry(*expires, time.Now().UTC())
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("-- access code for %s\n", *slug)
		fmt.Printf("INSERT INTO country_access_codes (country_id, code_hash, expires_at, max_uses)\n")
		fmt.Printf("SELECT id, '%s', %s, %s FROM countries WHERE slug = %s;\n\n",
			utils.SHA1Hex(*code), sqlTime(expiresAt), sqlMaxUses(*maxUses), sqlString(*slug))
	}

	if *adminCode != "" {
		fmt.Println("-- admin delete code")
		fmt.Printf("INSERT INTO admin_delete_code (code_hash) VALUES ('%s');\n\n", utils.SHA1Hex(*adminCode))
	}

	if *countryID != "" {
		cfg, err := config.Load(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		token, expiresAt, err := middleware.NewAuthMiddleware(cfg).GenerateToken(*countryID, *slug)
		if err != nil {
			log.Fatalf("Error signing token: %v", err)
		}
		fmt.Printf("-- session token, expires %s\n-- %s\n", expiresAt.Format(time.RFC3339), token)
	}
}

func sqlTime(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return "'" + t.UTC().Format(time.RFC3339) + "'"
}

func sqlMaxUses(n int) string {
	if n < 0 {
		return "NULL"
	}
	return fmt.Sprint(n)
}

func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
