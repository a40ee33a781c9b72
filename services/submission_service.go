package services

import (
	"errors"
	"gin-wardrobe/dto"
	"gin-wardrobe/models"
	"gin-wardrobe/repositories"

	"github.com/google/uuid"
)

// submissionUpdateFields is the allow-list for submission updates; the owner
// and the referenced item are immutable once created.
var submissionUpdateFields = map[string]bool{
	"comment": true,
	"city":    true,
	"country": true,
	"rating":  true,
}

type ISubmissionService interface {
	Create(input dto.CreateSubmissionInput, username string) (string, error)
	FindAll(username string, itemID string) ([]models.Document, error)
	FindById(submissionID string, username string) (models.Document, error)
	Update(submissionID string, username string, updates models.Document) error
	Delete(submissionID string, username string) error
}

type SubmissionService struct {
	repository repositories.IDocumentRepository
}

func NewSubmissionService(repository repositories.IDocumentRepository) ISubmissionService {
	return &SubmissionService{repository: repository}
}

// Create stores a submission for the authenticated user. The referenced item
// is not checked for existence or ownership.
func (s *SubmissionService) Create(input dto.CreateSubmissionInput, username string) (string, error) {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return "", err
	}

	submissionID := uuid.NewString()
	submission := models.Document{
		models.FieldID:     submissionID,
		models.FieldItemID: input.ItemID,
		"comment":          input.Comment,
		"city":             input.City,
		"country":          input.Country,
		"rating":           input.Rating,
		models.FieldUserID: userID,
	}
	if err := s.repository.Set(models.CollectionSubmissions, submissionID, submission); err != nil {
		return "", err
	}
	return submissionID, nil
}

// FindAll lists the user's submissions, optionally narrowed to one item.
func (s *SubmissionService) FindAll(username string, itemID string) ([]models.Document, error) {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return nil, err
	}

	query := s.repository.Query(models.CollectionSubmissions).
		Where(models.FieldUserID, userID)
	if itemID != "" {
		query = query.Where(models.FieldItemID, itemID)
	}
	return query.All()
}

func (s *SubmissionService) FindById(submissionID string, username string) (models.Document, error) {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return nil, err
	}

	submission, err := s.repository.Query(models.CollectionSubmissions).
		Where(models.FieldUserID, userID).
		Where(models.FieldID, submissionID).
		First()
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

// Update drops any field outside the allow-list before writing.
func (s *SubmissionService) Update(submissionID string, username string, updates models.Document) error {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return err
	}

	submission, err := s.repository.Get(models.CollectionSubmissions, submissionID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	if submission[models.FieldUserID] != userID {
		return ErrSubmissionForbidden
	}

	allowed := models.Document{}
	for field, value := range updates {
		if submissionUpdateFields[field] {
			allowed[field] = value
		}
	}
	return s.repository.Update(models.CollectionSubmissions, submissionID, allowed)
}

func (s *SubmissionService) Delete(submissionID string, username string) error {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return err
	}

	submission, err := s.repository.Get(models.CollectionSubmissions, submissionID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	if submission[models.FieldUserID] != userID {
		return ErrSubmissionForbidden
	}

	return s.repository.Delete(models.CollectionSubmissions, submissionID)
}
