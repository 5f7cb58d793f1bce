package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"notevault-be/internal/entity"
	"notevault-be/internal/repository/specification"
	"notevault-be/internal/repository/unitofwork"
	"notevault-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.FolderRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.TagRepository())
	assert.NotNil(t, uow.NoteVersionRepository())
	assert.NotNil(t, uow.CommentRepository())
	assert.NotNil(t, uow.NoteLockRepository())
	assert.NotNil(t, uow.ActivityRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Check Transactional Note Lifecycle", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
		}

		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		folderId := uuid.New()
		folder := &entity.Folder{
			Id:     folderId,
			Name:   "Integration Folder",
			UserId: userId,
		}
		err = uow.FolderRepository().Create(ctx, folder)
		assert.NoError(t, err)

		noteId := uuid.New()
		note := &entity.Note{
			Id:       noteId,
			Title:    "Integration Note",
			Content:  "first draft",
			FolderId: &folderId,
			UserId:   userId,
			Version:  1,
		}
		err = uow.NoteRepository().Create(ctx, note)
		assert.NoError(t, err)

		version := &entity.NoteVersion{
			Id:      uuid.New(),
			NoteId:  noteId,
			Version: 1,
			Title:   "Integration Note",
			Content: "first draft",
			Excerpt: "first draft",
		}
		err = uow.NoteVersionRepository().Create(ctx, version)
		assert.NoError(t, err)

		comment := &entity.Comment{
			Id:     uuid.New(),
			NoteId: noteId,
			UserId: userId,
			Body:   "looks good",
		}
		err = uow.CommentRepository().Create(ctx, comment)
		assert.NoError(t, err)

		tag := &entity.Tag{
			Id:     uuid.New(),
			Name:   "integration-" + uuid.New().String()[:8],
			Color:  "#3b82f6",
			UserId: userId,
		}
		err = uow.TagRepository().Create(ctx, tag)
		assert.NoError(t, err)
		err = uow.TagRepository().AttachToNote(ctx, noteId, tag.Id)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// The note should come back through the owner-scoped query
		found, err := uow.NoteRepository().FindOne(context.Background(),
			specification.ByID{ID: noteId},
			specification.UserOwnedBy{UserID: userId},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "Integration Note", found.Title)
			assert.Equal(t, 1, found.Version)
		}

		t.Log("Successfully created Note with Folder, Version, Comment and Tag in Transaction")
	})
}
