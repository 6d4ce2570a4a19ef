package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestAutoSyncService_filterDueStores(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

	service := &AutoSyncService{}

	tests := []struct {
		name    string
		stores  []*domain.Store
		wantIDs []string
	}{
		{
			name: "Loja nunca sincronizada - sempre vencida",
			stores: []*domain.Store{
				{ID: "st1", LastSyncAt: nil, SyncFrequencyHours: 24},
			},
			wantIDs: []string{"st1"},
		},
		{
			name: "Loja sincronizada há pouco - não vence",
			stores: []*domain.Store{
				{ID: "st1", LastSyncAt: timePtr(now.Add(-1 * time.Hour)), SyncFrequencyHours: 24},
			},
			wantIDs: []string{},
		},
		{
			name: "Loja vencida pela frequência configurada",
			stores: []*domain.Store{
				{ID: "st1", LastSyncAt: timePtr(now.Add(-25 * time.Hour)), SyncFrequencyHours: 24},
				{ID: "st2", LastSyncAt: timePtr(now.Add(-2 * time.Hour)), SyncFrequencyHours: 6},
				{ID: "st3", LastSyncAt: timePtr(now.Add(-7 * time.Hour)), SyncFrequencyHours: 6},
			},
			wantIDs: []string{"st1", "st3"},
		},
		{
			name: "Frequência zerada - usa o padrão de 24 horas",
			stores: []*domain.Store{
				{ID: "st1", LastSyncAt: timePtr(now.Add(-12 * time.Hour)), SyncFrequencyHours: 0},
				{ID: "st2", LastSyncAt: timePtr(now.Add(-30 * time.Hour)), SyncFrequencyHours: 0},
			},
			wantIDs: []string{"st2"},
		},
		{
			name: "Exatamente na fronteira - vencida",
			stores: []*domain.Store{
				{ID: "st1", LastSyncAt: timePtr(now.Add(-24 * time.Hour)), SyncFrequencyHours: 24},
			},
			wantIDs: []string{"st1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := service.filterDueStores(tt.stores, now)

			gotIDs := make([]string, 0, len(due))
			for _, store := range due {
				gotIDs = append(gotIDs, store.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestAutoSyncService_syncDueStores(t *testing.T) {
	t.Run("Sincroniza as vencidas e segue mesmo quando uma falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		syncerCalls := &fakeSyncer{failFor: "st2"}

		service := &AutoSyncService{
			storeRepo: storeRepo,
			syncer:    syncerCalls,
		}

		storeRepo.EXPECT().ListAutoSyncEnabled().Return([]*domain.Store{
			{ID: "st1", SyncFrequencyHours: 24},
			{ID: "st2", SyncFrequencyHours: 24},
			{ID: "st3", SyncFrequencyHours: 24},
		}, nil)

		service.syncDueStores()

		assert.Equal(t, []string{"st1", "st2", "st3"}, syncerCalls.synced)
	})

	t.Run("Erro ao listar lojas - não sincroniza nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		syncerCalls := &fakeSyncer{}

		service := &AutoSyncService{
			storeRepo: storeRepo,
			syncer:    syncerCalls,
		}

		storeRepo.EXPECT().ListAutoSyncEnabled().Return(nil, errors.New("banco indisponível"))

		service.syncDueStores()

		assert.Empty(t, syncerCalls.synced)
	})
}

// fakeSyncer registra as lojas sincronizadas na ordem das chamadas
type fakeSyncer struct {
	synced  []string
	failFor string
}

func (f *fakeSyncer) SyncStore(userID int, storeID string) (*domain.SyncStoreResponse, error) {
	return nil, errors.New("não usado pelo agendador")
}

func (f *fakeSyncer) SyncStoreUnchecked(store *domain.Store) (*domain.SyncStoreResponse, error) {
	f.synced = append(f.synced, store.ID)
	if store.ID == f.failFor {
		return nil, errors.New("falha simulada")
	}
	return &domain.SyncStoreResponse{StoreID: store.ID, RecordsSynced: 1}, nil
}

func (f *fakeSyncer) History(userID int, storeID string, limit uint64) ([]*domain.SyncHistory, error) {
	return nil, nil
}
