package repositories

import (
	"fmt"
	"testing"
	"time"

	"cargo-logbook-backend/db/models"
	"cargo-logbook-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLoadRepo(t *testing.T) LoadRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Load{}))

	return NewLoadRepository(db)
}

func mustDate(t *testing.T, s string) utils.DateOnly {
	t.Helper()
	d, err := utils.ParseDateOnly(s)
	require.NoError(t, err)
	return d
}

func TestCreateAndListRoundTrip(t *testing.T) {
	repo := setupLoadRepo(t)
	owner := uuid.New()

	created, err := repo.CreateLoad(&models.Load{
		OwnerID:    owner,
		LoadNumber: "1042",
		Date:       mustDate(t, "2024-05-02"),
		Carrier:    "Beta Transportes",
		Route:      "SP-RJ",
		Volumes:    "10",
		Orders:     "4",
		Loader:     "João",
		Notes:      "saiu no horário",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.LoadStatusOK, created.Status, "empty status defaults to ok")

	loads, err := repo.ListByOwner(owner)
	require.NoError(t, err)
	require.Len(t, loads, 1)

	got := loads[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "1042", got.LoadNumber)
	assert.Equal(t, "2024-05-02", got.Date.String())
	assert.Equal(t, "Beta Transportes", got.Carrier)
	assert.Equal(t, "SP-RJ", got.Route)
	assert.Equal(t, "10", got.Volumes)
	assert.Equal(t, "4", got.Orders)
	assert.Equal(t, "João", got.Loader)
	assert.Equal(t, models.LoadStatusOK, got.Status)
	assert.Equal(t, "saiu no horário", got.Notes)
}

func TestListByOwnerOrdering(t *testing.T) {
	repo := setupLoadRepo(t)
	owner := uuid.New()

	for _, l := range []models.Load{
		{OwnerID: owner, LoadNumber: "1040", Date: mustDate(t, "2024-05-01"), Carrier: "Alfa"},
		{OwnerID: owner, LoadNumber: "1042", Date: mustDate(t, "2024-05-02"), Carrier: "Beta"},
		{OwnerID: owner, LoadNumber: "1041", Date: mustDate(t, "2024-05-02"), Carrier: "Beta"},
	} {
		load := l
		_, err := repo.CreateLoad(&load)
		require.NoError(t, err)
	}

	loads, err := repo.ListByOwner(owner)
	require.NoError(t, err)
	require.Len(t, loads, 3)

	// Newest shipment date first, higher load number breaking the tie.
	assert.Equal(t, "1042", loads[0].LoadNumber)
	assert.Equal(t, "1041", loads[1].LoadNumber)
	assert.Equal(t, "1040", loads[2].LoadNumber)
}

func TestUpdateLoad(t *testing.T) {
	repo := setupLoadRepo(t)
	owner := uuid.New()

	created, err := repo.CreateLoad(&models.Load{
		OwnerID:    owner,
		LoadNumber: "1042",
		Date:       mustDate(t, "2024-05-02"),
		Carrier:    "Beta",
	})
	require.NoError(t, err)

	updated, err := repo.UpdateLoad(owner, created.ID.String(), &models.Load{
		LoadNumber: "1042",
		Date:       mustDate(t, "2024-05-03"),
		Carrier:    "Beta",
		Status:     models.LoadStatusProblem,
		Notes:      "chegou atrasada",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2024-05-03", updated.Date.String())
	assert.Equal(t, models.LoadStatusProblem, updated.Status)
	assert.Equal(t, "chegou atrasada", updated.Notes)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	_, err = repo.UpdateLoad(owner, uuid.NewString(), &models.Load{
		LoadNumber: "9999",
		Date:       mustDate(t, "2024-05-03"),
		Carrier:    "Gama",
	})
	assert.ErrorIs(t, err, ErrLoadNotFound)
}

func TestDeleteLoad(t *testing.T) {
	repo := setupLoadRepo(t)
	owner := uuid.New()

	created, err := repo.CreateLoad(&models.Load{
		OwnerID:    owner,
		LoadNumber: "1042",
		Date:       mustDate(t, "2024-05-02"),
		Carrier:    "Beta",
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteLoad(owner, created.ID.String()))

	_, err = repo.GetLoadByID(owner, created.ID.String())
	assert.ErrorIs(t, err, ErrLoadNotFound)

	// Second delete of the same id reports not found; callers treat it as
	// success so double submits never surface an error.
	assert.ErrorIs(t, repo.DeleteLoad(owner, created.ID.String()), ErrLoadNotFound)

	loads, err := repo.ListByOwner(owner)
	require.NoError(t, err)
	assert.Empty(t, loads)
}

func TestOwnerIsolation(t *testing.T) {
	repo := setupLoadRepo(t)
	owner := uuid.New()
	stranger := uuid.New()

	created, err := repo.CreateLoad(&models.Load{
		OwnerID:    owner,
		LoadNumber: "1042",
		Date:       mustDate(t, "2024-05-02"),
		Carrier:    "Beta",
	})
	require.NoError(t, err)

	loads, err := repo.ListByOwner(stranger)
	require.NoError(t, err)
	assert.Empty(t, loads)

	_, err = repo.GetLoadByID(stranger, created.ID.String())
	assert.ErrorIs(t, err, ErrLoadNotFound)

	assert.ErrorIs(t, repo.DeleteLoad(stranger, created.ID.String()), ErrLoadNotFound)
}
