package contact

import (
	"context"

	"recipe-hub-backend/entities"

	"gorm.io/gorm"
)

type (
	ContactRepository interface {
		CreateContact(ctx context.Context, contact *entities.Contact) error
		GetContactByID(ctx context.Context, id string) (*entities.Contact, error)
		UpdateContact(ctx context.Context, contact *entities.Contact) error
	}

	contactRepository struct {
		db *gorm.DB
	}
)

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *entities.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) GetContactByID(ctx context.Context, id string) (*entities.Contact, error) {
	var contact entities.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) UpdateContact(ctx context.Context, contact *entities.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}
