package catalog

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
)

type fakeServiceRepo struct {
	services  map[string]*domain.Service
	upsertErr error
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*domain.Service)}
}

func (f *fakeServiceRepo) Upsert(_ context.Context, svc *domain.Service) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	stored := *svc
	f.services[svc.ID] = &stored
	return nil
}

func (f *fakeServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(f.services))
	for _, svc := range f.services {
		result = append(result, svc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSeed(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Serviços inicializados com sucesso", resp.Message)
	assert.Equal(t, len(defaultServices), resp.Count)
	assert.Contains(t, repo.services, "lavagem-simples")
	assert.Contains(t, repo.services, "higienizacao-estofados")
}

func TestSeed_Idempotent(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, noopLogger{})

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)
	_, err = svc.Seed(context.Background())
	require.NoError(t, err)

	// Повторный сев не создает дубликатов
	assert.Len(t, repo.services, len(defaultServices))
}

func TestSeed_RepositoryError(t *testing.T) {
	repo := newFakeServiceRepo()
	repo.upsertErr = errors.New("connection refused")
	svc := NewService(repo, noopLogger{})

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList_OrderedByPrice(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, noopLogger{})

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Services, len(defaultServices))
	for i := 1; i < len(resp.Services); i++ {
		assert.LessOrEqual(t, resp.Services[i-1].Price, resp.Services[i].Price)
	}
}
