package newsletter

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
	NewsletterService interface {
		Subscribe(ctx context.Context, req domain.SubscribeRequest) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, req domain.SubscribeRequest) error
	}

	newsletterService struct {
		newsletterRepository NewsletterRepository
	}
)

func NewNewsletterService(newsletterRepository NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepository: newsletterRepository}
}

func (s *newsletterService) Subscribe(ctx context.Context, req domain.SubscribeRequest) (domain.SubscriptionResponse, error) {
	existing, err := s.newsletterRepository.GetSubscriptionByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SubscriptionResponse{}, err
	}

	if existing != nil {
		if existing.IsActive {
			return domain.SubscriptionResponse{}, domain.ErrEmailAlreadySubscribed
		}
		// a previously unsubscribed address may come back
		existing.IsActive = true
		if err := s.newsletterRepository.UpdateSubscription(ctx, existing); err != nil {
			return domain.SubscriptionResponse{}, err
		}
		return subscriptionResponse(existing), nil
	}

	subscription := &entities.NewsletterSubscription{
		ID:       uuid.New(),
		Email:    req.Email,
		IsActive: true,
	}
	if err := s.newsletterRepository.CreateSubscription(ctx, subscription); err != nil {
		return domain.SubscriptionResponse{}, err
	}

	if mailing.Enabled() {
		body := fmt.Sprintf("<p>Thanks for subscribing to our recipe newsletter, %s!</p>", req.Email)
		if err := mailing.SendMail(req.Email, "Welcome to the newsletter", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", req.Email, err)
		}
	}

	return subscriptionResponse(subscription), nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, req domain.SubscribeRequest) error {
	existing, err := s.newsletterRepository.GetSubscriptionByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubscriptionNotFound
		}
		return err
	}

	existing.IsActive = false
	return s.newsletterRepository.UpdateSubscription(ctx, existing)
}

func subscriptionResponse(sub *entities.NewsletterSubscription) domain.SubscriptionResponse {
	return domain.SubscriptionResponse{
		ID:       sub.ID.String(),
		Email:    sub.Email,
		IsActive: sub.IsActive,
	}
}
