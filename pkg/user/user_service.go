package user

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"PantryPal-Backend/pkg/jwt"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		UpsertProfile(ctx context.Context, req domain.UpsertProfileRequest, userID, email string) (domain.ProfileResponse, bool, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.EmailExists(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		Email:       req.Email,
		Password:    string(hashed),
		DisplayName: req.DisplayName,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)
	return domain.LoginResponse{Token: token}, nil
}

// UpsertProfile creates the profile on first write and updates it afterwards.
// The returned bool reports whether the profile already existed.
func (s *userService) UpsertProfile(ctx context.Context, req domain.UpsertProfileRequest, userID, email string) (domain.ProfileResponse, bool, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return domain.ProfileResponse{}, false, domain.ErrDisplayNameRequired
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, false, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, false, err
	}

	existed := user.DisplayName != ""
	user.DisplayName = req.DisplayName
	if req.Preferences != nil {
		restrictions, err := json.Marshal(req.Preferences.DietaryRestrictions)
		if err != nil {
			return domain.ProfileResponse{}, false, err
		}
		cuisines, err := json.Marshal(req.Preferences.FavoriteCuisines)
		if err != nil {
			return domain.ProfileResponse{}, false, err
		}
		user.DietaryRestrictions = string(restrictions)
		user.FavoriteCuisines = string(cuisines)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.ProfileResponse{}, false, err
	}

	return profileResponse(user), existed, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return profileResponse(user), nil
}

func profileResponse(user *entities.User) domain.ProfileResponse {
	res := domain.ProfileResponse{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		IsPremium:   user.IsPremium,
		UpdatedAt:   user.UpdatedAt,
	}

	prefs := domain.UserPreferences{}
	if user.DietaryRestrictions != "" {
		_ = json.Unmarshal([]byte(user.DietaryRestrictions), &prefs.DietaryRestrictions)
	}
	if user.FavoriteCuisines != "" {
		_ = json.Unmarshal([]byte(user.FavoriteCuisines), &prefs.FavoriteCuisines)
	}
	if prefs.DietaryRestrictions != nil || prefs.FavoriteCuisines != nil {
		res.Preferences = &prefs
	}
	return res
}
