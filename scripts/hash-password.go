package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash for customers.phrase. Login compares phrases
// case-insensitively, so the phrase is lower-cased before hashing.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run scripts/hash-password.go <phrase>\n")
		os.Exit(1)
	}

	phrase := strings.ToLower(os.Args[1])
	hash, err := bcrypt.GenerateFromPassword([]byte(phrase), 12)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
