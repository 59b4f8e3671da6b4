package services

import (
	"errors"

	"github.com/minifocus/minifocus/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	List() ([]models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// ProfileUpdate carries only the fields the caller supplied; nil means
// "leave untouched".
type ProfileUpdate struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Register creates a new, active, non-superuser account. Any non-empty
// password is accepted here; the strength rule applies only when an existing
// account changes its password. The caller is responsible for bootstrapping
// the new user's Inbox project afterwards.
func (service *AuthService) Register(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		IsActive:     true,
		IsSuperuser:  false,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Authenticate reports ErrInvalidCredentials for both unknown emails and wrong
// passwords; only a deactivated account is surfaced separately.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (service *AuthService) UpdateProfile(userID uint, update ProfileUpdate) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if update.Email != nil {
		email := NormalizeAuthEmail(*update.Email)
		if email == "" {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		if email != user.Email {
			taken, err := service.users.ExistsByNormalizedEmail(email)
			if err != nil {
				return models.User{}, err
			}
			if taken {
				return models.User{}, ErrEmailTaken
			}
			user.Email = email
		}
	}

	if update.Password != nil {
		if err := ValidatePasswordStrength(*update.Password); err != nil {
			return models.User{}, err
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = string(passwordHash)
	}

	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) ListUsers() ([]models.User, error) {
	return service.users.List()
}

// SetUserActive flips the account gate for one user; used by the admin surface.
func (service *AuthService) SetUserActive(userID uint, active bool) (models.User, error) {
	if _, err := service.users.FindByID(userID); err != nil {
		return models.User{}, ErrUserNotFound
	}
	if err := service.users.UpdateByID(userID, map[string]any{"is_active": active}); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}
