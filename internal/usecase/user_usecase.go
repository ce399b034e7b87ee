package usecase

import (
	"errors"

	"guestbook/internal/entity"
	"guestbook/internal/repo/persistent"
	"guestbook/pkg/logger"

	"gorm.io/gorm"
)

type UserUseCase interface {
	SubscriptionStatus(userID string) (string, error)
	GetAddress(userID string) (*entity.Address, error)
	AddAddress(userID string, address *entity.Address) (*entity.Address, error)
	UpdateAddress(userID string, address *entity.Address) (*entity.Address, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *userUseCase) SubscriptionStatus(userID string) (string, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", entity.NotFound("could not find user")
		}
		uc.logger.Error("Failed to load user %s: %v", userID, err)
		return "", entity.Internal("failed to load user", err)
	}
	return user.SubscriptionStatus, nil
}

// GetAddress returns nil without error when the user has no address yet.
func (uc *userUseCase) GetAddress(userID string) (*entity.Address, error) {
	address, err := uc.userRepo.GetAddress(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		uc.logger.Error("Failed to load address for user %s: %v", userID, err)
		return nil, entity.Internal("failed to load address", err)
	}
	return address, nil
}

// AddAddress rejects a second add; the unique index on user_id is the arbiter.
func (uc *userUseCase) AddAddress(userID string, address *entity.Address) (*entity.Address, error) {
	address.UserID = userID
	if err := uc.userRepo.CreateAddress(address); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.Conflict("address already exists")
		}
		uc.logger.Error("Failed to create address for user %s: %v", userID, err)
		return nil, entity.Internal("failed to create address", err)
	}
	return address, nil
}

func (uc *userUseCase) UpdateAddress(userID string, address *entity.Address) (*entity.Address, error) {
	address.UserID = userID
	if err := uc.userRepo.UpdateAddress(address); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("no address on file")
		}
		uc.logger.Error("Failed to update address for user %s: %v", userID, err)
		return nil, entity.Internal("failed to update address", err)
	}
	return address, nil
}
