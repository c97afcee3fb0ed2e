package contact

import (
	"context"
	"errors"
	"fmt"
	"log"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"
	"recipe-hub-backend/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ContactService interface {
		SubmitContact(ctx context.Context, req domain.SubmitContactRequest) (domain.ContactResponse, error)
		MarkAsRead(ctx context.Context, id string) error
	}

	contactService struct {
		contactRepository ContactRepository
	}
)

func NewContactService(contactRepository ContactRepository) ContactService {
	return &contactService{contactRepository: contactRepository}
}

func (s *contactService) SubmitContact(ctx context.Context, req domain.SubmitContactRequest) (domain.ContactResponse, error) {
	contact := &entities.Contact{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepository.CreateContact(ctx, contact); err != nil {
		return domain.ContactResponse{}, err
	}

	if mailing.Enabled() {
		inbox := mailing.LoadMailConfig().ContactInbox
		if inbox != "" {
			body := fmt.Sprintf(
				"<p>New contact message from %s (%s)</p><p>Subject: %s</p><p>%s</p>",
				contact.Name, contact.Email, contact.Subject, contact.Message,
			)
			if err := mailing.SendMail(inbox, "New contact message", body); err != nil {
				log.Printf("failed to forward contact message %s: %v", contact.ID, err)
			}
		}
	}

	return domain.ContactResponse{
		ID:      contact.ID.String(),
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Subject: contact.Subject,
		Message: contact.Message,
	}, nil
}

func (s *contactService) MarkAsRead(ctx context.Context, id string) error {
	contact, err := s.contactRepository.GetContactByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrContactNotFound
		}
		return err
	}

	contact.IsRead = true
	return s.contactRepository.UpdateContact(ctx, contact)
}
