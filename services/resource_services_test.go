package services

import (
	"fmt"
	"gin-wardrobe/dto"
	"gin-wardrobe/models"
	"gin-wardrobe/repositories"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) repositories.IDocumentRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StoredDocument{}))
	return repositories.NewDocumentRepository(db)
}

func newTestUserService(repo repositories.IDocumentRepository) IUserService {
	return NewUserService(repo, NewTokenService(testSecret, time.Hour))
}

func registerUser(t *testing.T, users IUserService, username string) string {
	t.Helper()
	userID, err := users.Register(dto.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "TestPassword123",
	})
	require.NoError(t, err)
	return userID
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)

	registerUser(t, users, "alice")

	_, err := users.Register(dto.RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "OtherPassword456",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginConflatesUnknownUserAndBadPassword(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)

	registerUser(t, users, "alice")

	_, err := users.Login(dto.LoginInput{Username: "nobody", Password: "TestPassword123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Login(dto.LoginInput{Username: "alice", Password: "WrongPassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)

	registerUser(t, users, "alice")
	require.NoError(t, users.Update("alice", dto.UpdateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "NewPassword456",
	}))

	user, err := users.GetDetails("alice")
	require.NoError(t, err)
	digest, _ := user[models.FieldPassword].(string)
	assert.NotEqual(t, "NewPassword456", digest)
	assert.True(t, VerifyPassword("NewPassword456", digest))
}

func TestDeleteUserLeavesOwnedRecords(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)
	items := NewItemService(repo)

	registerUser(t, users, "alice")
	itemID, err := items.Create(dto.CreateItemInput{Name: "coat", Color: "navy"}, "alice")
	require.NoError(t, err)

	require.NoError(t, users.Delete("alice"))

	// The item document is orphaned, not removed.
	_, err = repo.Get(models.CollectionItems, itemID)
	assert.NoError(t, err)

	// But the owner can no longer be resolved.
	_, err = items.FindById(itemID, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestItemOwnership(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)
	items := NewItemService(repo)

	registerUser(t, users, "alice")
	registerUser(t, users, "bob")

	itemID, err := items.Create(dto.CreateItemInput{Name: "coat", Color: "navy"}, "alice")
	require.NoError(t, err)

	err = items.Update(itemID, "bob", models.Document{"color": "red"})
	assert.ErrorIs(t, err, ErrItemForbidden)
	err = items.Delete(itemID, "bob")
	assert.ErrorIs(t, err, ErrItemForbidden)

	// The double-filtered read reports another user's item as missing.
	_, err = items.FindById(itemID, "bob")
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, items.Update(itemID, "alice", models.Document{"color": "red"}))
	item, err := items.FindById(itemID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "red", item["color"])

	require.NoError(t, items.Delete(itemID, "alice"))
	_, err = items.FindById(itemID, "alice")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSubmissionUpdateAllowList(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)
	submissions := NewSubmissionService(repo)

	registerUser(t, users, "alice")

	submissionID, err := submissions.Create(dto.CreateSubmissionInput{
		ItemID:  "item-1",
		Comment: "warm enough",
		City:    "Oslo",
		Country: "Norway",
		Rating:  80,
	}, "alice")
	require.NoError(t, err)

	require.NoError(t, submissions.Update(submissionID, "alice", models.Document{
		"comment": "too warm",
		"city":    "Bergen",
		"country": "Norway",
		"rating":  55,
		"item_id": "item-2",
		"user_id": "someone-else",
	}))

	got, err := submissions.FindById(submissionID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "too warm", got["comment"])
	assert.Equal(t, "Bergen", got["city"])
	assert.Equal(t, float64(55), got["rating"])
	assert.Equal(t, "item-1", got[models.FieldItemID])
}

func TestSubmissionListFilterByItem(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)
	submissions := NewSubmissionService(repo)

	registerUser(t, users, "alice")

	for _, itemID := range []string{"item-1", "item-1", "item-2"} {
		_, err := submissions.Create(dto.CreateSubmissionInput{
			ItemID:  itemID,
			Comment: "ok",
			City:    "Oslo",
			Country: "Norway",
			Rating:  50,
		}, "alice")
		require.NoError(t, err)
	}

	all, err := submissions.FindAll("alice", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := submissions.FindAll("alice", "item-1")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}

func TestDeleteItemKeepsSubmissions(t *testing.T) {
	repo := newTestRepository(t)
	users := newTestUserService(repo)
	items := NewItemService(repo)
	submissions := NewSubmissionService(repo)

	registerUser(t, users, "alice")

	itemID, err := items.Create(dto.CreateItemInput{Name: "coat", Color: "navy"}, "alice")
	require.NoError(t, err)
	submissionID, err := submissions.Create(dto.CreateSubmissionInput{
		ItemID:  itemID,
		Comment: "ok",
		City:    "Oslo",
		Country: "Norway",
		Rating:  50,
	}, "alice")
	require.NoError(t, err)

	require.NoError(t, items.Delete(itemID, "alice"))

	got, err := submissions.FindById(submissionID, "alice")
	require.NoError(t, err)
	assert.Equal(t, itemID, got[models.FieldItemID])
}
