// cmd/gentoken/main.go — mints an HMAC access token for local testing.
// Usage: JWT_SECRET=... go run cmd/gentoken/main.go -name dev -role admin
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/damian-dev1/Ecommerce-Manager/internal/middleware"
)

func main() {
	name := flag.String("name", "dev", "subject name embedded in the token")
	role := flag.String("role", "admin", "role claim: reader | editor | admin")
	hours := flag.Int("hours", 24, "token lifetime in hours")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	claims := middleware.JWTClaims{
		Name: *name,
		Role: *role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *name,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*hours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("sign error: %v", err)
	}
	fmt.Println(signed)
}
