package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// genhash prints a bcrypt hash for seeding dashboard users.
func generatePasswordHash(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}

	hash, err := generatePasswordHash(os.Args[1], 12)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
