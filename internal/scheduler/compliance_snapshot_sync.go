package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository"
	"github.com/vfg2006/pharma-sfe-api/internal/config"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/visiting"
	"github.com/vfg2006/pharma-sfe-api/pkg/utils"
)

// ComplianceSnapshotSyncConfig representa a configuração do agendador de
// fotografias mensais de compliance de visitas
type ComplianceSnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	RetentionMonths   int
}

// ComplianceSnapshotSyncService materializa, por agendamento, o índice de
// retorno de cada delegado ativo em fotografias mensais persistidas
type ComplianceSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ComplianceSnapshotSyncConfig
	userRepo            repository.UserRepository
	snapshotRepo        repository.ComplianceSnapshotRepository
	complianceService   visiting.ComplianceEvaluator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SyncStatus resume o estado corrente do agendador para exposição via API
type SyncStatus struct {
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

// NewComplianceSnapshotSyncService cria uma nova instância do serviço de
// sincronização de fotografias de compliance
func NewComplianceSnapshotSyncService(
	userRepo repository.UserRepository,
	snapshotRepo repository.ComplianceSnapshotRepository,
	complianceService visiting.ComplianceEvaluator,
	appConfig *config.Config,
) *ComplianceSnapshotSyncService {
	syncConfig := ComplianceSnapshotSyncConfig{
		CronSchedule:      appConfig.ComplianceSnapshotSync.CronSchedule,
		MaxConcurrentJobs: appConfig.ComplianceSnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.ComplianceSnapshotSync.Enabled,
		RetentionMonths:   appConfig.ComplianceSnapshotSync.RetentionMonths,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"retention_months":    syncConfig.RetentionMonths,
	}).Info("Configuração do agendador de fotografias de compliance carregada")

	return &ComplianceSnapshotSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		userRepo:          userRepo,
		snapshotRepo:      snapshotRepo,
		complianceService: complianceService,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *ComplianceSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de fotografias de compliance desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fotografias de compliance")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncComplianceSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de fotografias de compliance: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fotografias de compliance")
		s.scheduler.Stop()
	}()

	return nil
}

// syncComplianceSnapshots materializa o índice de retorno de todos os
// delegados ativos no período corrente
func (s *ComplianceSnapshotSyncService) syncComplianceSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de fotografias de compliance já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de fotografias de compliance para todos os delegados ativos")

	delegates, err := s.userRepo.ListByRole(domain.RoleDelegate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar delegados para sincronização de fotografias de compliance")
		return
	}

	if len(delegates) == 0 {
		logrus.Info("Nenhum delegado ativo encontrado para sincronização de fotografias de compliance")
		return
	}

	now := time.Now()
	period := utils.MonthPeriod(now)
	processed := s.processSnapshots(delegates, now, period)

	// Poda das fotografias fora da janela de retenção
	if s.config.RetentionMonths > 0 {
		deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionMonths)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover fotografias de compliance antigas")
		} else if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Fotografias de compliance antigas removidas")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"delegates": len(delegates),
		"snapshots": processed,
		"period":    period,
	}).Info("Sincronização de fotografias de compliance concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processSnapshots processa os delegados em paralelo, limitado pelo número
// máximo de jobs concorrentes
func (s *ComplianceSnapshotSyncService) processSnapshots(delegates []*domain.User, at time.Time, period string) int {
	maxJobs := s.config.MaxConcurrentJobs
	if maxJobs < 1 {
		maxJobs = 1
	}

	semaphore := make(chan struct{}, maxJobs)
	var wg sync.WaitGroup

	var mu sync.Mutex
	processed := 0

	for _, delegate := range delegates {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(delegate *domain.User) {
			defer wg.Done()
			defer func() { <-semaphore }()

			count, err := s.snapshotDelegate(delegate.ID, at, period)
			if err != nil {
				logrus.WithError(err).WithField("delegate_id", delegate.ID).
					Error("Erro ao materializar fotografias de compliance do delegado")
				return
			}

			mu.Lock()
			processed += count
			mu.Unlock()
		}(delegate)
	}

	wg.Wait()
	return processed
}

// snapshotDelegate calcula o índice de retorno do delegado e persiste uma
// fotografia por doutor do seu plano de visitas
func (s *ComplianceSnapshotSyncService) snapshotDelegate(delegateID int, at time.Time, period string) (int, error) {
	entries, err := s.complianceService.BuildReturnIndex(delegateID, at)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.Doctor == nil {
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return count, err
		}

		snapshot := &repository.ComplianceSnapshot{
			ID:              id,
			Period:          period,
			DelegateID:      delegateID,
			DoctorID:        entry.Doctor.ID,
			VisitsCompleted: entry.VisitsCompletedYTD,
			VisitsExpected:  entry.VisitsExpectedYTD,
			Percentage:      entry.Percentage,
			Status:          entry.Status,
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// TriggerManualSync inicia manualmente uma sincronização de fotografias de compliance
func (s *ComplianceSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de fotografias de compliance já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de fotografias de compliance")
	go s.syncComplianceSnapshots()
}

// Status retorna o estado corrente do agendador
func (s *ComplianceSnapshotSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{Running: s.syncRunning}
	if !s.lastSyncStartedAt.IsZero() {
		t := s.lastSyncStartedAt
		status.LastSyncStartedAt = &t
	}
	if !s.lastSyncCompletedAt.IsZero() {
		t := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &t
	}
	return status
}
