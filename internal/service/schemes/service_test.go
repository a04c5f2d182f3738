package schemes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/memory"
)

type failingStore struct{}

func (failingStore) ListSchemes(context.Context) ([]models.Scheme, error) {
	return nil, errors.New("store unavailable")
}

func TestListServesCloudSchemes(t *testing.T) {
	store := memory.New()
	store.SeedSchemes([]models.Scheme{
		{ID: "s1", Name: "Drip Irrigation Subsidy", URL: "https://example.gov"},
	})

	svc := NewService(store, nil)
	schemes := svc.List(context.Background())

	require.Len(t, schemes, 1)
	assert.Equal(t, "s1", schemes[0].ID)
}

func TestListFallsBackWhenEmpty(t *testing.T) {
	svc := NewService(memory.New(), nil)
	schemes := svc.List(context.Background())

	require.NotEmpty(t, schemes)
	assert.Equal(t, localSchemes, schemes)
}

func TestListFallsBackOnError(t *testing.T) {
	svc := NewService(failingStore{}, nil)
	assert.Equal(t, localSchemes, svc.List(context.Background()))
}
