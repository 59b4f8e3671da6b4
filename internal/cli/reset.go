package cli

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/minifocus/minifocus/internal/db"
	"github.com/minifocus/minifocus/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand sets a fresh temporary password for the given
// account and prints it. Meant for operators with shell access to the host.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("email = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("Ask the user to change it after logging in.")

	return nil
}

// Lookalike characters (0/O, 1/l/I) are left out so the password can be read
// over the phone.
const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// generateTemporaryPassword draws uniformly from the alphabet. Lengths below
// 8 are raised to 8.
func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	// Bytes past the largest multiple of the alphabet size are rejected to
	// keep the draw unbiased.
	accept := len(temporaryPasswordAlphabet) * (256 / len(temporaryPasswordAlphabet))

	password := make([]byte, 0, length)
	buffer := make([]byte, 32)
	for len(password) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, raw := range buffer {
			if int(raw) >= accept {
				continue
			}
			password = append(password, temporaryPasswordAlphabet[int(raw)%len(temporaryPasswordAlphabet)])
			if len(password) == length {
				break
			}
		}
	}

	return string(password), nil
}
