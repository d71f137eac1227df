package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessCreateProfile  = "profile created successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessSubscribe      = "subscription transaction created"
	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedManageProfile   = "failed to manage user profile"
	MessageFailedGetProfile      = "failed to fetch user profile"
	MessageFailedSubscribe       = "failed to create subscription transaction"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrDisplayNameRequired    = errors.New("display name is required and must be a non-empty string")
)

type (
	RegisterRequest struct {
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		DisplayName string `json:"display_name" validate:"required"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	UserPreferences struct {
		DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
		FavoriteCuisines    []string `json:"favoriteCuisines,omitempty"`
	}

	UpsertProfileRequest struct {
		DisplayName string           `json:"displayName" validate:"required"`
		Preferences *UserPreferences `json:"preferences,omitempty"`
	}

	ProfileResponse struct {
		DisplayName string           `json:"displayName"`
		Email       string           `json:"email"`
		Preferences *UserPreferences `json:"preferences,omitempty"`
		IsPremium   bool             `json:"isPremium"`
		UpdatedAt   time.Time        `json:"updatedAt"`
	}
)
