// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted by IsStrongPassword.
const MinPasswordLength = 8

// passwordSpecialChars lists the characters that count as "special" for
// IsStrongPassword.
const passwordSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// HashPassword returns the bcrypt hash of password using bcrypt.DefaultCost.
//
// Example usage:
//
//	hash, err := utils.HashPassword("S3cure!pass")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt hash.
// A malformed hash never matches.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsStrongPassword reports whether password is at least MinPasswordLength
// characters long and contains an upper-case letter, a lower-case letter, a
// digit and one of !@#$%^&*()_+-=[]{}|;:,.<>?
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < MinPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
