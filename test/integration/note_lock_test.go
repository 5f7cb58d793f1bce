package integration

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"notevault-be/internal/bootstrap"
	"notevault-be/internal/config"
	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/server"
	"notevault-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestNoteLockFlow(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed a verified user
	password := "notes-pass-123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hashStr := string(hash)

	userId := uuid.New()
	user := entity.User{
		Id:            userId,
		Email:         "locktest-" + uuid.New().String() + "@example.com",
		FullName:      "Lock Test User",
		PasswordHash:  &hashStr,
		Role:          entity.UserRoleUser,
		Status:        entity.UserStatusActive,
		EmailVerified: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	db.Create(&user)

	var noteId uuid.UUID
	defer func() {
		if noteId != uuid.Nil {
			db.Exec("DELETE FROM note_locks WHERE note_id = ?", noteId)
			db.Exec("DELETE FROM notes WHERE id = ?", noteId)
		}
		db.Delete(&entity.User{}, userId)
	}()

	var accessToken string

	t.Run("Login", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{
			Email:    user.Email,
			Password: password,
		})
		req := httptest.NewRequest("POST", "/api/auth/v1/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.Response[dto.LoginResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.NotEmpty(t, result.Data.AccessToken)
		accessToken = result.Data.AccessToken
	})

	if accessToken == "" {
		t.Fatal("login did not return an access token")
	}

	t.Run("Create Note", func(t *testing.T) {
		body, _ := json.Marshal(dto.CreateNoteRequest{
			Title:   "Secret Plans",
			Content: "the combination is 1234",
		})
		req := httptest.NewRequest("POST", "/api/note/v1", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.Response[dto.CreateNoteResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.NotEqual(t, uuid.Nil, result.Data.Id)
		noteId = result.Data.Id
	})

	t.Run("Set Lock", func(t *testing.T) {
		hint := "four digits"
		body, _ := json.Marshal(dto.SetNoteLockRequest{
			Password: "vault-pass",
			Hint:     &hint,
		})
		req := httptest.NewRequest("PUT", "/api/note/v1/"+noteId.String()+"/lock", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Locked note hides content", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/note/v1/"+noteId.String(), nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.Response[dto.ShowNoteResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.True(t, result.Data.Locked)
		assert.Empty(t, result.Data.Content)
	})

	t.Run("Update denied while locked", func(t *testing.T) {
		body, _ := json.Marshal(dto.UpdateNoteRequest{
			Title:   "Secret Plans v2",
			Content: "changed",
		})
		req := httptest.NewRequest("PUT", "/api/note/v1/"+noteId.String(), strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		body, _ := json.Marshal(dto.UnlockNoteRequest{Password: "not-the-pass"})
		req := httptest.NewRequest("POST", "/api/note/v1/"+noteId.String()+"/lock/unlock", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("Unlock then read content", func(t *testing.T) {
		body, _ := json.Marshal(dto.UnlockNoteRequest{Password: "vault-pass"})
		req := httptest.NewRequest("POST", "/api/note/v1/"+noteId.String()+"/lock/unlock", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var unlockResult serverutils.Response[dto.UnlockNoteResponse]
		json.NewDecoder(resp.Body).Decode(&unlockResult)
		assert.True(t, unlockResult.Data.ExpiresAt.After(time.Now()))

		showReq := httptest.NewRequest("GET", "/api/note/v1/"+noteId.String(), nil)
		showReq.Header.Set("Authorization", "Bearer "+accessToken)

		showResp, _ := app.Test(showReq, -1)
		assert.Equal(t, 200, showResp.StatusCode)

		var result serverutils.Response[dto.ShowNoteResponse]
		json.NewDecoder(showResp.Body).Decode(&result)
		assert.Equal(t, "the combination is 1234", result.Data.Content)
	})
}
