package service

import (
	"context"
	"net/mail"
	"strings"

	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/model"
	"hosting-storefront/internal/repository"
)

type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(req.Message) == "" {
		return &ValidationError{Field: "message", Reason: "is required"}
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}

	return s.contactRepo.Create(ctx, &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
}
