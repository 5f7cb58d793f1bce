package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/model"
	"notevault-be/internal/repository/unitofwork"
	"notevault-be/internal/service"
	"notevault-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDeleteAccountRemovesAllOwnedRows(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	userService := service.NewUserService(uowFactory)

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	password := "delete-me-123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hashStr := string(hash)

	userId := uuid.New()
	user := &entity.User{
		Id:           userId,
		Email:        "deletion-" + uuid.New().String() + "@example.com",
		FullName:     "Deletion Test User",
		PasswordHash: &hashStr,
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusActive,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	// Rows in every owned table, including both token kinds
	require.NoError(t, uow.UserRepository().CreatePasswordResetToken(ctx, &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    userId,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, uow.UserRepository().CreateEmailVerificationToken(ctx, &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    userId,
		Token:     "123456",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, uow.UserRepository().CreateRefreshToken(ctx, &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    userId,
		TokenHash: uuid.New().String(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{
		Id:      uuid.New(),
		Title:   "Doomed note",
		Content: "gone soon",
		UserId:  userId,
		Version: 1,
	}))

	// Safety net in case the deletion fails partway
	defer func() {
		db.Exec("DELETE FROM notes WHERE user_id = ?", userId)
		db.Exec("DELETE FROM password_reset_tokens WHERE user_id = ?", userId)
		db.Exec("DELETE FROM email_verification_tokens WHERE user_id = ?", userId)
		db.Exec("DELETE FROM user_refresh_tokens WHERE user_id = ?", userId)
		db.Exec("DELETE FROM users WHERE id = ?", userId)
	}()

	err = userService.DeleteAccount(ctx, userId, &dto.DeleteAccountRequest{Password: password})
	require.NoError(t, err)

	countRows := func(m interface{}, where string) int64 {
		var count int64
		db.Model(m).Where(where, userId).Count(&count)
		return count
	}

	assert.Zero(t, countRows(&model.User{}, "id = ?"))
	assert.Zero(t, countRows(&model.Note{}, "user_id = ?"))
	assert.Zero(t, countRows(&model.PasswordResetToken{}, "user_id = ?"))
	assert.Zero(t, countRows(&model.EmailVerificationToken{}, "user_id = ?"))
	assert.Zero(t, countRows(&model.UserRefreshToken{}, "user_id = ?"))
}
