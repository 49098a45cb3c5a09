package authController

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/repository"
	authValidator "coursetrack/validators/auth"
)

// Store is what the auth handlers need from the repository.
type Store interface {
	Signup(ctx context.Context, nu repository.NewUser) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	GetUser(ctx context.Context, id uint) (models.User, error)
	UpdateUser(ctx context.Context, id uint, uu repository.UpdateUser) (models.User, error)
}

type TokenIssuer interface {
	IssueToken(userID uint) (string, error)
}

type Controller struct {
	store  Store
	tokens TokenIssuer
}

func New(store Store, tokens TokenIssuer) *Controller {
	return &Controller{store: store, tokens: tokens}
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.SignupKey).(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ac.store.Signup(c.UserContext(), repository.NewUser{
		Username:  strings.TrimSpace(reqData.Username),
		Email:     strings.TrimSpace(reqData.Email),
		Password:  reqData.Password,
		FirstName: strings.TrimSpace(reqData.FirstName),
		LastName:  strings.TrimSpace(reqData.LastName),
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := ac.tokens.IssueToken(user.ID)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", authResponse{Token: token, User: user})
}

func (ac *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.LoginKey).(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ac.store.Authenticate(c.UserContext(), strings.TrimSpace(reqData.Username), reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := ac.tokens.IssueToken(user.ID)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", authResponse{Token: token, User: user})
}

// Me returns the caller's profile.
func (ac *Controller) Me(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ac.store.GetUser(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func (ac *Controller) UpdateMe(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals(authValidator.ProfileKey).(*authValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ac.store.UpdateUser(c.UserContext(), userID, repository.UpdateUser{
		Email:     reqData.Email,
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Bio:       reqData.Bio,
		AvatarURL: reqData.AvatarURL,
		Password:  reqData.Password,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
