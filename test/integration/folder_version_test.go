package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/memory"
	"notevault-be/internal/repository/unitofwork"
	"notevault-be/internal/service"
	"notevault-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderHierarchyAndVersioning(t *testing.T) {
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
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisherService := service.NewPublisherService("RECORD_ACTIVITY", pubSub)
	unlockStore := memory.NewUnlockRepository(10 * time.Minute)

	folderService := service.NewFolderService(uowFactory, publisherService)
	noteService := service.NewNoteService(uowFactory, unlockStore, nil, publisherService)
	versionService := service.NewNoteVersionService(uowFactory, unlockStore, publisherService)

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	userId := uuid.New()
	user := &entity.User{
		Id:       userId,
		Email:    "hierarchy-" + uuid.New().String() + "@example.com",
		FullName: "Hierarchy Test User",
		Role:     entity.UserRoleUser,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	defer func() {
		db.Exec("DELETE FROM note_versions WHERE note_id IN (SELECT id FROM notes WHERE user_id = ?)", userId)
		db.Exec("DELETE FROM notes WHERE user_id = ?", userId)
		db.Exec("DELETE FROM folders WHERE user_id = ?", userId)
		db.Exec("DELETE FROM activity_events WHERE user_id = ?", userId)
		db.Exec("DELETE FROM users WHERE id = ?", userId)
	}()

	t.Run("Move folder into own subtree rejected", func(t *testing.T) {
		root, err := folderService.Create(ctx, userId, &dto.CreateFolderRequest{Name: "Projects"})
		require.NoError(t, err)
		require.NotNil(t, root)

		child, err := folderService.Create(ctx, userId, &dto.CreateFolderRequest{
			Name:     "Active",
			ParentId: &root.Id,
		})
		require.NoError(t, err)
		require.NotNil(t, child)

		grandchild, err := folderService.Create(ctx, userId, &dto.CreateFolderRequest{
			Name:     "Sprint",
			ParentId: &child.Id,
		})
		require.NoError(t, err)
		require.NotNil(t, grandchild)

		err = folderService.Move(ctx, userId, &dto.MoveFolderRequest{
			Id:       root.Id,
			ParentId: &grandchild.Id,
		})
		assert.Error(t, err, "moving a folder under its own descendant must fail")

		err = folderService.Move(ctx, userId, &dto.MoveFolderRequest{
			Id:       root.Id,
			ParentId: &root.Id,
		})
		assert.Error(t, err, "a folder cannot be its own parent")

		// Moving a subtree out to the root stays legal
		err = folderService.Move(ctx, userId, &dto.MoveFolderRequest{
			Id:       child.Id,
			ParentId: nil,
		})
		assert.NoError(t, err)
	})

	t.Run("Versions are monotonic and restore snapshots first", func(t *testing.T) {
		created, err := noteService.Create(ctx, userId, &dto.CreateNoteRequest{
			Title:   "Draft",
			Content: "first",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		v2, err := noteService.Update(ctx, userId, &dto.UpdateNoteRequest{
			Id:      created.Id,
			Title:   "Draft",
			Content: "second",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, v2.Version)

		v3, err := noteService.Update(ctx, userId, &dto.UpdateNoteRequest{
			Id:      created.Id,
			Title:   "Draft",
			Content: "third",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, v3.Version)

		versions, err := versionService.List(ctx, userId, created.Id)
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, 2, versions[0].Version)
		assert.Equal(t, 1, versions[1].Version)

		restored, err := versionService.Restore(ctx, userId, &dto.RestoreVersionRequest{
			NoteId:  created.Id,
			Version: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, restored.Version)

		// The pre-restore state is snapshotted, nothing is deleted
		versions, err = versionService.List(ctx, userId, created.Id)
		require.NoError(t, err)
		require.Len(t, versions, 3)
		assert.Equal(t, 3, versions[0].Version)

		note, err := noteService.Show(ctx, userId, created.Id)
		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, "first", note.Content)
		assert.Equal(t, 4, note.Version)
	})
}
