package visiting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
	"github.com/vfg2006/pharma-sfe-api/pkg/utils"
)

// ComplianceEvaluator calcula o índice de retorno por doutor e registra
// novas visitas de um delegado
type ComplianceEvaluator interface {
	// BuildReturnIndex monta o relatório completo do índice de retorno do
	// delegado na data de referência
	BuildReturnIndex(delegateID int, at time.Time) ([]*domain.ReturnIndexEntry, error)

	// DoctorsNeedingVisit retorna apenas os doutores cuja cota do mês
	// corrente ainda não foi cumprida
	DoctorsNeedingVisit(delegateID int, at time.Time) ([]*domain.ReturnIndexEntry, error)

	// RecordVisit grava uma visita datada de hoje (somente data civil)
	RecordVisit(doctorID string, delegateID int, date time.Time) (*domain.Visit, error)
}

type Service struct {
	visitPlanRepo repository.VisitPlanRepository
	visitRepo     repository.VisitRepository
	doctorRepo    repository.DoctorRepository
}

func NewService(
	visitPlanRepo repository.VisitPlanRepository,
	visitRepo repository.VisitRepository,
	doctorRepo repository.DoctorRepository,
) ComplianceEvaluator {
	return &Service{
		visitPlanRepo: visitPlanRepo,
		visitRepo:     visitRepo,
		doctorRepo:    doctorRepo,
	}
}

func (s *Service) BuildReturnIndex(delegateID int, at time.Time) ([]*domain.ReturnIndexEntry, error) {
	plans, err := s.visitPlanRepo.ListByDelegate(delegateID)
	if err != nil {
		return nil, err
	}

	if len(plans) == 0 {
		return []*domain.ReturnIndexEntry{}, nil
	}

	// Janela de busca: do mês retrasado (pode cruzar a virada do ano) até
	// o fim do mês corrente
	currentMonthStart := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	windowStart := currentMonthStart.AddDate(0, -2, 0)
	windowEnd := currentMonthStart.AddDate(0, 1, -1)

	visits, err := s.visitRepo.ListByDelegateAndPeriod(delegateID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	// Visitas do ano corrente anteriores ao mês em andamento
	yearStart := time.Date(at.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	ytdVisits := visits
	if windowStart.After(yearStart) {
		// A janela de status não alcança janeiro; buscar o acumulado do ano
		// separadamente
		ytdVisits, err = s.visitRepo.ListByDelegateAndPeriod(delegateID, yearStart, windowEnd)
		if err != nil {
			return nil, err
		}
	}

	doctorIDs := make([]string, 0, len(plans))
	for _, plan := range plans {
		doctorIDs = append(doctorIDs, plan.DoctorID)
	}

	doctors, err := s.doctorRepo.ListByIDs(doctorIDs)
	if err != nil {
		return nil, err
	}

	doctorsByID := make(map[string]*domain.Doctor, len(doctors))
	for _, doctor := range doctors {
		doctorsByID[doctor.ID] = doctor
	}

	lastMonthStart := currentMonthStart.AddDate(0, -1, 0)

	entries := make([]*domain.ReturnIndexEntry, 0, len(plans))
	for _, plan := range plans {
		entry := &domain.ReturnIndexEntry{
			Doctor:         doctorsByID[plan.DoctorID],
			VisitPlanID:    plan.ID,
			VisitFrequency: plan.VisitFrequency,
		}

		for _, visit := range visits {
			if visit.VisitPlanID != plan.ID {
				continue
			}
			switch {
			case utils.SameMonth(visit.VisitDate, currentMonthStart):
				entry.VisitsThisMonth++
			case utils.SameMonth(visit.VisitDate, lastMonthStart):
				entry.VisitsLastMonth++
			case utils.SameMonth(visit.VisitDate, windowStart):
				entry.VisitsMonthBeforeLast++
			}
		}

		for _, visit := range ytdVisits {
			if visit.VisitPlanID != plan.ID {
				continue
			}
			if visit.VisitDate.Year() == at.Year() && visit.VisitDate.Before(currentMonthStart) {
				entry.VisitsCompletedYTD++
			}
		}

		currentMonth := int(at.Month())
		entry.VisitsExpectedYTD = metrics.ExpectedVisitsYTD(plan.VisitFrequency, currentMonth)
		entry.Percentage = metrics.ReturnIndexPercentage(entry.VisitsCompletedYTD, plan.VisitFrequency, currentMonth)
		entry.Status = metrics.ComplianceStatus(entry.VisitsLastMonth, entry.VisitsMonthBeforeLast)

		entry.VisitsRemainingMonth = plan.VisitFrequency - entry.VisitsThisMonth
		if entry.VisitsRemainingMonth < 0 {
			entry.VisitsRemainingMonth = 0
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *Service) DoctorsNeedingVisit(delegateID int, at time.Time) ([]*domain.ReturnIndexEntry, error) {
	entries, err := s.BuildReturnIndex(delegateID, at)
	if err != nil {
		return nil, err
	}

	// Doutores com a cota do mês cumprida saem da lista acionável; eles
	// continuam aparecendo no relatório completo
	needing := make([]*domain.ReturnIndexEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.NeedsVisit() {
			needing = append(needing, entry)
		}
	}

	return needing, nil
}

// RecordVisit é a única operação de escrita do núcleo de visitas. Não é
// idempotente: registrar duas vezes no mesmo dia cria duas linhas.
func (s *Service) RecordVisit(doctorID string, delegateID int, date time.Time) (*domain.Visit, error) {
	plan, err := s.visitPlanRepo.GetByDoctorAndDelegate(doctorID, delegateID)
	if err != nil {
		return nil, err
	}

	if plan == nil {
		return nil, ErrVisitPlanNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	visit := &domain.Visit{
		ID:          id,
		VisitPlanID: plan.ID,
		VisitDate:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}

	if err := s.visitRepo.Insert(visit); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"doctor_id":   doctorID,
		"delegate_id": delegateID,
		"visit_date":  visit.VisitDate.Format(time.DateOnly),
	}).Info("visita registrada")

	return visit, nil
}
