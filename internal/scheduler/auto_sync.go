package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/syncing"
)

// AutoSyncConfig representa a configuração do agendador de sincronização automática
type AutoSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AutoSyncService percorre periodicamente as lojas com sincronização
// automática habilitada e importa os pedidos das que estão vencidas
// segundo a frequência configurada por loja
type AutoSyncService struct {
	scheduler           *gocron.Scheduler
	config              AutoSyncConfig
	storeRepo           repository.StoreRepository
	syncer              syncing.OrderSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAutoSyncService cria uma nova instância do serviço de sincronização automática
func NewAutoSyncService(
	storeRepo repository.StoreRepository,
	syncer syncing.OrderSyncer,
	appConfig *config.Config,
) *AutoSyncService {
	autoSyncConfig := AutoSyncConfig{
		CronSchedule: appConfig.AutoSync.CronSchedule,
		SyncEnabled:  appConfig.AutoSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": autoSyncConfig.CronSchedule,
		"sync_enabled":  autoSyncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização automática carregada")

	return &AutoSyncService{
		scheduler:   scheduler,
		config:      autoSyncConfig,
		storeRepo:   storeRepo,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AutoSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização automática de lojas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização automática de lojas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDueStores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização automática de lojas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização automática de lojas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDueStores sincroniza todas as lojas habilitadas cuja última
// sincronização já passou da frequência configurada
func (s *AutoSyncService) syncDueStores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização automática já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	stores, err := s.storeRepo.ListAutoSyncEnabled()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas para sincronização automática")
		return
	}

	dueStores := s.filterDueStores(stores, startTime)
	if len(dueStores) == 0 {
		logrus.Info("Nenhuma loja vencida para sincronização automática")
		return
	}

	logrus.WithFields(logrus.Fields{
		"enabled_stores": len(stores),
		"due_stores":     len(dueStores),
	}).Info("Iniciando sincronização automática de lojas")

	var synced, failed int
	for _, store := range dueStores {
		result, err := s.syncer.SyncStoreUnchecked(store)
		if err != nil {
			failed++
			logrus.WithError(err).WithField("store_id", store.ID).Error("Erro na sincronização automática da loja")
			continue
		}

		synced++
		logrus.WithFields(logrus.Fields{
			"store_id":       store.ID,
			"records_synced": result.RecordsSynced,
		}).Info("Loja sincronizada automaticamente")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"synced":   synced,
		"failed":   failed,
	}).Info("Sincronização automática de lojas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// filterDueStores mantém apenas as lojas nunca sincronizadas ou com a
// última sincronização mais antiga que a frequência da loja
func (s *AutoSyncService) filterDueStores(stores []*domain.Store, now time.Time) []*domain.Store {
	due := make([]*domain.Store, 0, len(stores))

	for _, store := range stores {
		if store.LastSyncAt == nil {
			due = append(due, store)
			continue
		}

		frequency := time.Duration(store.SyncFrequencyHours) * time.Hour
		if frequency <= 0 {
			frequency = 24 * time.Hour
		}

		if now.Sub(*store.LastSyncAt) >= frequency {
			due = append(due, store)
		}
	}

	return due
}
