package main

//// Small CLI tool that signs a bearer token for local testing of the API.

import (
	"alcyxob/weekly-plans/internal/auth"
	"alcyxob/weekly-plans/internal/domain"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	userID := flag.String("uid", "", "user id the token is issued for")
	role := flag.String("role", string(domain.RoleStudent), "TRAINER or STUDENT")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "signing secret, defaults to $JWT_SECRET")
	flag.Parse()

	tokens, err := auth.NewTokens(*secret, *ttl)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	token, err := tokens.Issue(domain.Identity{UserID: *userID, Role: domain.Role(strings.ToUpper(*role))})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
