package authValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/validators"
)

const (
	SignupKey  = "validatedSignup"
	LoginKey   = "validatedLogin"
	ProfileKey = "validatedProfile"
)

type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email           string `json:"email" validate:"omitempty,email,max=255"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstName" validate:"max=100"`
	LastName        string `json:"lastName" validate:"max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest only changes the fields that are present.
type UpdateProfileRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=1000"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
	Password  *string `json:"password" validate:"omitempty,min=6,max=72"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return validators.Body[SignupRequest](SignupKey)
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[LoginRequest](LoginKey)
}

func UpdateProfile() fiber.Handler {
	return validators.Body[UpdateProfileRequest](ProfileKey)
}
