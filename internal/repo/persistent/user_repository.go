package persistent

import (
	"guestbook/internal/entity"
	"guestbook/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error

	GetAddress(userID string) (*entity.Address, error)
	CreateAddress(address *entity.Address) error
	UpdateAddress(address *entity.Address) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Save(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetAddress(userID string) (*entity.Address, error) {
	var addressModel model.AddressModel
	if err := r.db.Where("user_id = ?", userID).First(&addressModel).Error; err != nil {
		return nil, err
	}
	return ToAddressEntity(&addressModel), nil
}

// CreateAddress relies on the unique index on user_id; a second add comes
// back as gorm.ErrDuplicatedKey.
func (r *userRepository) CreateAddress(address *entity.Address) error {
	addressModel := ToAddressModel(address)
	if err := r.db.Create(addressModel).Error; err != nil {
		return err
	}
	*address = *ToAddressEntity(addressModel)
	return nil
}

// UpdateAddress overwrites every field of the caller's existing row.
func (r *userRepository) UpdateAddress(address *entity.Address) error {
	result := r.db.Model(&model.AddressModel{}).
		Where("user_id = ?", address.UserID).
		Updates(map[string]interface{}{
			"street":  address.Street,
			"city":    address.City,
			"zip":     address.Zip,
			"country": address.Country,
			"phone":   address.Phone,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var addressModel model.AddressModel
	if err := r.db.Where("user_id = ?", address.UserID).First(&addressModel).Error; err != nil {
		return err
	}
	*address = *ToAddressEntity(&addressModel)
	return nil
}
