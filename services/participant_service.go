package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
)

var (
	ErrParticipantNameRequired = errors.New("participant full name is required")
	ErrParticipantInUse        = errors.New("participant cannot be deleted while pairs reference them")
	ErrBirthDateInFuture       = errors.New("birth date cannot be in the future")
)

type ParticipantService interface {
	CreateParticipant(ctx context.Context, input ParticipantInput) (*models.Participant, error)
	GetParticipantByID(ctx context.Context, id int) (*models.Participant, error)
	GetParticipantsByIDs(ctx context.Context, ids []int) ([]models.Participant, error)
	ListParticipants(ctx context.Context, filter repositories.ListParticipantsFilter) ([]models.Participant, error)
	UpdateParticipant(ctx context.Context, id int, input ParticipantInput) (*models.Participant, error)
	DeleteParticipant(ctx context.Context, id int) error
}

type ParticipantInput struct {
	FullName   string        `json:"full_name"`
	BirthDate  time.Time     `json:"birth_date"`
	Gender     models.Gender `json:"gender"`
	CategoryID int           `json:"category_id"`
	Notes      *string       `json:"notes"`
}

type participantService struct {
	participantRepo repositories.ParticipantRepository
}

func NewParticipantService(participantRepo repositories.ParticipantRepository) ParticipantService {
	return &participantService{participantRepo: participantRepo}
}

func (s *participantService) validateInput(input *ParticipantInput) error {
	input.FullName = strings.TrimSpace(input.FullName)
	if input.FullName == "" {
		return ErrParticipantNameRequired
	}
	if !input.Gender.Valid() {
		return ErrInvalidGender
	}
	if input.BirthDate.After(time.Now()) {
		return ErrBirthDateInFuture
	}
	return nil
}

func (s *participantService) CreateParticipant(ctx context.Context, input ParticipantInput) (*models.Participant, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	participant := &models.Participant{
		FullName:   input.FullName,
		BirthDate:  input.BirthDate,
		Gender:     input.Gender,
		CategoryID: input.CategoryID,
		Notes:      input.Notes,
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, repositories.ErrParticipantInvalidCategory) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return participant, nil
}

func (s *participantService) GetParticipantByID(ctx context.Context, id int) (*models.Participant, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant by id %d: %w", id, err)
	}
	return participant, nil
}

// GetParticipantsByIDs resolves a set of participant IDs. Any missing ID
// fails the whole lookup with ErrParticipantNotFound.
func (s *participantService) GetParticipantsByIDs(ctx context.Context, ids []int) ([]models.Participant, error) {
	participants, err := s.participantRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	if len(participants) != len(ids) {
		return nil, ErrParticipantNotFound
	}
	return participants, nil
}

func (s *participantService) ListParticipants(ctx context.Context, filter repositories.ListParticipantsFilter) ([]models.Participant, error) {
	if filter.Gender != nil && !filter.Gender.Valid() {
		return nil, ErrInvalidGender
	}
	participants, err := s.participantRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, id int, input ParticipantInput) (*models.Participant, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	participant := &models.Participant{
		ID:         id,
		FullName:   input.FullName,
		BirthDate:  input.BirthDate,
		Gender:     input.Gender,
		CategoryID: input.CategoryID,
		Notes:      input.Notes,
	}

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		switch {
		case errors.Is(err, repositories.ErrParticipantNotFound):
			return nil, ErrParticipantNotFound
		case errors.Is(err, repositories.ErrParticipantInvalidCategory):
			return nil, ErrCategoryNotFound
		default:
			return nil, fmt.Errorf("failed to update participant %d: %w", id, err)
		}
	}
	return participant, nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, id int) error {
	if err := s.participantRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrParticipantNotFound):
			return ErrParticipantNotFound
		case errors.Is(err, repositories.ErrParticipantInUse):
			return ErrParticipantInUse
		default:
			return fmt.Errorf("failed to delete participant %d: %w", id, err)
		}
	}
	return nil
}
