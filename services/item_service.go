package services

import (
	"errors"
	"gin-wardrobe/dto"
	"gin-wardrobe/models"
	"gin-wardrobe/repositories"

	"github.com/google/uuid"
)

type IItemService interface {
	Create(input dto.CreateItemInput, username string) (string, error)
	FindAll(username string) ([]models.Document, error)
	FindById(itemID string, username string) (models.Document, error)
	Update(itemID string, username string, updates models.Document) error
	Delete(itemID string, username string) error
}

type ItemService struct {
	repository repositories.IDocumentRepository
}

func NewItemService(repository repositories.IDocumentRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) Create(input dto.CreateItemInput, username string) (string, error) {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return "", err
	}

	itemID := uuid.NewString()
	item := models.Document{
		models.FieldID:     itemID,
		"name":             input.Name,
		"color":            input.Color,
		models.FieldUserID: userID,
	}
	if err := s.repository.Set(models.CollectionItems, itemID, item); err != nil {
		return "", err
	}
	return itemID, nil
}

func (s *ItemService) FindAll(username string) ([]models.Document, error) {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return nil, err
	}
	return s.repository.Query(models.CollectionItems).
		Where(models.FieldUserID, userID).
		All()
}

// FindById filters on both owner and id, so another user's item reads the
// same as a missing one.
func (s *ItemService) FindById(itemID string, username string) (models.Document, error) {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return nil, err
	}

	item, err := s.repository.Query(models.CollectionItems).
		Where(models.FieldUserID, userID).
		Where(models.FieldID, itemID).
		First()
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Update applies the caller's field set verbatim after the ownership check.
func (s *ItemService) Update(itemID string, username string, updates models.Document) error {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return err
	}

	item, err := s.repository.Get(models.CollectionItems, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if item[models.FieldUserID] != userID {
		return ErrItemForbidden
	}

	return s.repository.Update(models.CollectionItems, itemID, updates)
}

// Delete removes the item only; submissions referencing it are left in place.
func (s *ItemService) Delete(itemID string, username string) error {
	userID, err := resolveUserID(s.repository, username)
	if err != nil {
		return err
	}

	item, err := s.repository.Get(models.CollectionItems, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if item[models.FieldUserID] != userID {
		return ErrItemForbidden
	}

	return s.repository.Delete(models.CollectionItems, itemID)
}
