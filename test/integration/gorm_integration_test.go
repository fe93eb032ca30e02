package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"
	"exec-workspace-be/internal/repository/unitofwork"
	"exec-workspace-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
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

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.WorkspaceRepository())
	assert.NotNil(t, uow.ExecObjectRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Workspace Repository", func(t *testing.T) {
		count, err := uow.WorkspaceRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Workspace count: %d", count)
	})

	t.Run("Check Object CRUD Round Trip", func(t *testing.T) {
		ctx := context.Background()

		workspace := &entity.Workspace{
			Id:        uuid.New(),
			Name:      "Integration Workspace " + uuid.NewString(),
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.WorkspaceRepository().Create(ctx, workspace))

		now := time.Now()
		object := &entity.ExecObject{
			Id:          uuid.New(),
			WorkspaceId: workspace.Id,
			ObjectType:  "project",
			Title:       "Integration Project",
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		require.NoError(t, uow.ExecObjectRepository().Create(ctx, object))

		found, err := uow.ExecObjectRepository().FindOne(ctx, specification.ByID{ID: object.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Integration Project", found.Title)

		missing, err := uow.ExecObjectRepository().FindOne(ctx, specification.ByID{ID: uuid.New()})
		require.NoError(t, err)
		assert.Nil(t, missing)

		require.NoError(t, uow.ExecObjectRepository().Delete(ctx, object.Id))
	})

	t.Run("Check Transactional Note Cascade", func(t *testing.T) {
		ctx := context.Background()

		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))

		workspace := &entity.Workspace{
			Id:        uuid.New(),
			Name:      "Tx Workspace " + uuid.NewString(),
			CreatedAt: time.Now(),
		}
		require.NoError(t, txUow.WorkspaceRepository().Create(ctx, workspace))

		now := time.Now()
		note := &entity.Note{
			Id:          uuid.New(),
			WorkspaceId: workspace.Id,
			Title:       "Tx Note",
			NoteKind:    "general",
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		require.NoError(t, txUow.NoteRepository().Create(ctx, note))

		// rollback leaves no trace
		require.NoError(t, txUow.Rollback())

		gone, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}
