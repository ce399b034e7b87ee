package usecase

import (
	"errors"
	"io"

	"guestbook/internal/entity"
	"guestbook/internal/repo/persistent"
	"guestbook/pkg/jwt"
	"guestbook/pkg/logger"
	"guestbook/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(name, email, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(name, email, password string) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", entity.Conflict("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", entity.Internal("failed to process registration", err)
	}

	user := &entity.User{
		Name:               name,
		Email:              email,
		Password:           string(hashedPassword),
		SubscriptionStatus: "inactive",
	}

	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", entity.Conflict("user with this email already exists")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", entity.Internal("failed to create user", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Name, user.Email, user.Image)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", entity.Internal("failed to generate token", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", entity.Unauthenticated("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.Unauthenticated("invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Name, user.Email, user.Image)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", entity.Internal("failed to generate token", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("could not find user")
		}
		return nil, entity.Internal("failed to load user", err)
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	imageURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, entity.Internal("failed to upload avatar", err)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("could not find user")
		}
		return nil, entity.Internal("failed to load user", err)
	}

	user.Image = imageURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, entity.Internal("failed to update user", err)
	}

	user.Password = ""
	return user, nil
}
