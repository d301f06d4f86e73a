package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository"
	repomocks "github.com/vfg2006/pharma-sfe-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
	visitingmocks "github.com/vfg2006/pharma-sfe-api/internal/usecases/visiting/mocks"
	"github.com/vfg2006/pharma-sfe-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestComplianceSnapshotSyncService_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repomocks.NewMockUserRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockComplianceSnapshotRepository(ctrl)
	mockCompliance := visitingmocks.NewMockComplianceEvaluator(ctrl)

	service := &ComplianceSnapshotSyncService{
		config: ComplianceSnapshotSyncConfig{
			MaxConcurrentJobs: 2,
			RetentionMonths:   24,
		},
		userRepo:          mockUserRepo,
		snapshotRepo:      mockSnapshotRepo,
		complianceService: mockCompliance,
	}

	delegates := []*domain.User{
		{ID: 7, Name: "Rui"},
		{ID: 8, Name: "Carla"},
	}

	mockUserRepo.EXPECT().
		ListByRole(domain.RoleDelegate).
		Return(delegates, nil)

	mockCompliance.EXPECT().
		BuildReturnIndex(7, gomock.Any()).
		Return([]*domain.ReturnIndexEntry{
			{
				Doctor:             &domain.Doctor{ID: "DOC001"},
				VisitPlanID:        "VP0001",
				VisitFrequency:     2,
				VisitsCompletedYTD: 3,
				VisitsExpectedYTD:  4,
				Percentage:         75,
				Status:             metrics.StatusGreen,
			},
			// Doutor removido depois da criação do plano: sem fotografia
			{Doctor: nil, VisitPlanID: "VP0002"},
		}, nil)

	mockCompliance.EXPECT().
		BuildReturnIndex(8, gomock.Any()).
		Return([]*domain.ReturnIndexEntry{
			{
				Doctor:            &domain.Doctor{ID: "DOC002"},
				VisitPlanID:       "VP0003",
				VisitFrequency:    1,
				VisitsExpectedYTD: 2,
				Status:            metrics.StatusRed,
			},
		}, nil)

	expectedPeriod := utils.MonthPeriod(time.Now())

	// Os delegados são processados em paralelo
	var mu sync.Mutex
	saved := make(map[string]*repository.ComplianceSnapshot)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *repository.ComplianceSnapshot) error {
			mu.Lock()
			defer mu.Unlock()
			saved[snapshot.DoctorID] = snapshot
			return nil
		}).
		Times(2)

	mockSnapshotRepo.EXPECT().
		DeleteOlderThan(24).
		Return(int64(5), nil)

	service.syncComplianceSnapshots()

	require.Len(t, saved, 2)

	first := saved["DOC001"]
	require.NotNil(t, first)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, expectedPeriod, first.Period)
	assert.Equal(t, 7, first.DelegateID)
	assert.Equal(t, 3, first.VisitsCompleted)
	assert.Equal(t, 4, first.VisitsExpected)
	assert.Equal(t, 75, first.Percentage)
	assert.Equal(t, metrics.StatusGreen, first.Status)

	second := saved["DOC002"]
	require.NotNil(t, second)
	assert.Equal(t, 8, second.DelegateID)
	assert.Equal(t, metrics.StatusRed, second.Status)

	status := service.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastSyncStartedAt)
	require.NotNil(t, status.LastSyncCompletedAt)
}

func TestComplianceSnapshotSyncService_SyncAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repomocks.NewMockUserRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockComplianceSnapshotRepository(ctrl)
	mockCompliance := visitingmocks.NewMockComplianceEvaluator(ctrl)

	service := &ComplianceSnapshotSyncService{
		config:            ComplianceSnapshotSyncConfig{MaxConcurrentJobs: 1},
		userRepo:          mockUserRepo,
		snapshotRepo:      mockSnapshotRepo,
		complianceService: mockCompliance,
		syncRunning:       true,
	}

	// Nenhuma chamada aos repositórios é esperada
	service.syncComplianceSnapshots()
	service.TriggerManualSync()

	status := service.Status()
	assert.True(t, status.Running)
}

func TestComplianceSnapshotSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repomocks.NewMockUserRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockComplianceSnapshotRepository(ctrl)
	mockCompliance := visitingmocks.NewMockComplianceEvaluator(ctrl)

	service := &ComplianceSnapshotSyncService{
		config:            ComplianceSnapshotSyncConfig{MaxConcurrentJobs: 1},
		userRepo:          mockUserRepo,
		snapshotRepo:      mockSnapshotRepo,
		complianceService: mockCompliance,
	}

	done := make(chan struct{})
	mockUserRepo.EXPECT().
		ListByRole(domain.RoleDelegate).
		DoAndReturn(func(domain.Role) ([]*domain.User, error) {
			close(done)
			return []*domain.User{}, nil
		})

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não foi disparada")
	}
}
