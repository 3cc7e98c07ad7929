package service

import (
	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/pkg/logger"
)

type ContactService interface {
	Submit(name, email, message string) (*model.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) Submit(name, email, message string) (*model.ContactMessage, error) {
	logger.Info("Submitting contact message", map[string]interface{}{
		"email": email,
	})

	contactMessage := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := s.contactRepo.Create(contactMessage); err != nil {
		logger.Error("Failed to submit contact message", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	logger.Info("Contact message submitted successfully", map[string]interface{}{
		"message_id": contactMessage.ID,
	})
	return contactMessage, nil
}
