package services

import (
	"errors"
	"gin-wardrobe/dto"
	"gin-wardrobe/models"
	"gin-wardrobe/repositories"

	"github.com/google/uuid"
)

type IUserService interface {
	Register(input dto.RegisterInput) (string, error)
	Login(input dto.LoginInput) (string, error)
	GetDetails(username string) (models.Document, error)
	Update(username string, input dto.UpdateUserInput) error
	Delete(username string) error
}

type UserService struct {
	repository   repositories.IDocumentRepository
	tokenService ITokenService
}

func NewUserService(repository repositories.IDocumentRepository, tokenService ITokenService) IUserService {
	return &UserService{
		repository:   repository,
		tokenService: tokenService,
	}
}

// Register stores a new user after a uniqueness pre-check on the username.
// The pre-check and the write are separate store calls, so two concurrent
// registrations with the same username can both pass the check.
func (s *UserService) Register(input dto.RegisterInput) (string, error) {
	_, err := s.repository.Query(models.CollectionUsers).
		Where(models.FieldUsername, input.Username).
		First()
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, repositories.ErrDocumentNotFound) {
		return "", err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	userID := uuid.NewString()
	user := models.Document{
		models.FieldID:       userID,
		models.FieldUsername: input.Username,
		"email":              input.Email,
		models.FieldPassword: hashed,
	}
	if err := s.repository.Set(models.CollectionUsers, userID, user); err != nil {
		return "", err
	}
	return userID, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password report the same error.
func (s *UserService) Login(input dto.LoginInput) (string, error) {
	user, err := s.repository.Query(models.CollectionUsers).
		Where(models.FieldUsername, input.Username).
		First()
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	digest, _ := user[models.FieldPassword].(string)
	if !VerifyPassword(input.Password, digest) {
		return "", ErrInvalidCredentials
	}

	username, _ := user[models.FieldUsername].(string)
	return s.tokenService.Issue(username)
}

func (s *UserService) GetDetails(username string) (models.Document, error) {
	user, err := s.repository.Query(models.CollectionUsers).
		Where(models.FieldUsername, username).
		First()
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies the supplied fields as-is, re-hashing the password.
func (s *UserService) Update(username string, input dto.UpdateUserInput) error {
	user, err := s.GetDetails(username)
	if err != nil {
		return err
	}
	userID, _ := user[models.FieldID].(string)

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return err
	}
	fields := models.Document{
		models.FieldUsername: input.Username,
		"email":              input.Email,
		models.FieldPassword: hashed,
	}
	return s.repository.Update(models.CollectionUsers, userID, fields)
}

// Delete removes the user document only. Items and submissions the user owns
// stay behind, and already-issued tokens keep validating until they expire.
func (s *UserService) Delete(username string) error {
	user, err := s.GetDetails(username)
	if err != nil {
		return err
	}
	userID, _ := user[models.FieldID].(string)
	return s.repository.Delete(models.CollectionUsers, userID)
}

// resolveUserID maps an authenticated username to the internal user id that
// owned records are stamped with.
func resolveUserID(repository repositories.IDocumentRepository, username string) (string, error) {
	user, err := repository.Query(models.CollectionUsers).
		Where(models.FieldUsername, username).
		First()
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	userID, _ := user[models.FieldID].(string)
	return userID, nil
}
