package service

import (
	"context"

	"eko-analiz/internal/dto"
	"eko-analiz/internal/models"
	"eko-analiz/pkg/config"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	sustainabilityLimit = 7
	recyclingLimit      = 10
	entrepreneurLimit   = 10
)

// AnalysisStore is the read surface the aggregator needs. The production
// implementation talks to the hosted PostgREST API; tests substitute it.
type AnalysisStore interface {
	ListFirms(ctx context.Context) ([]models.Firm, error)
	ListReturnPredictions(ctx context.Context) ([]models.ReturnPrediction, error)
	ListTopSustainabilityScores(ctx context.Context, limit int) ([]models.SustainabilityScore, error)
	ListTopRecyclingFirms(ctx context.Context, limit int) ([]models.RecyclingFirm, error)
	ListEntrepreneurs(ctx context.Context) ([]models.Entrepreneur, error)
	ListTopCompatibilityScores(ctx context.Context, limit int) ([]models.CompatibilityScore, error)
}

type AnalysisService struct {
	store  AnalysisStore
	cfg    *config.SupabaseConfig
	logger *zap.Logger
}

func NewAnalysisService(store AnalysisStore, cfg *config.SupabaseConfig, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// FetchAnalysis assembles the aggregate dashboard payload. The four
// fetch steps have no ordering dependency and run concurrently, each
// under its own timeout; a plain errgroup (no shared cancellation) keeps
// one failing step from aborting the others. The response itself is
// all-or-nothing: the first step error is returned, tagged with its step
// name.
func (s *AnalysisService) FetchAnalysis(ctx context.Context) (*dto.AnalysisResponse, error) {
	if missing := s.cfg.MissingSecrets(); len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	var (
		firms          []dto.FirmEntry
		sustainability []dto.SustainabilityEntry
		recycling      []dto.RecyclingEntry
		entrepreneurs  []dto.EntrepreneurEntry
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		firms, err = s.fetchFirms(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		sustainability, err = s.fetchSustainability(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recycling, err = s.fetchRecycling(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		entrepreneurs, err = s.fetchEntrepreneurs(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	defaults := DefaultParams()
	s.logger.Debug("Analysis payload assembled",
		zap.Int("firms", len(firms)),
		zap.Int("sustainability", len(sustainability)),
		zap.Int("recycling", len(recycling)),
		zap.Int("entrepreneurs", len(entrepreneurs)),
	)

	return &dto.AnalysisResponse{
		Firms: firms,
		Charts: dto.Charts{
			Sustainability: sustainability,
			Recycling:      recycling,
			Entrepreneur:   entrepreneurs,
		},
		Defaults: dto.Defaults{
			FemaleRatio:     defaults.FemaleRatio,
			DisabledRatio:   defaults.DisabledRatio,
			FoundingYear:    defaults.FoundingYear,
			RecyclingTarget: defaults.RecyclingTarget,
		},
	}, nil
}

func (s *AnalysisService) stepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.QueryTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.QueryTimeout)
	}
	return context.WithCancel(ctx)
}

// fetchFirms returns every firm that has a predicted return, ordered by
// the prediction descending, uncapped. Predictions whose firm id has no
// match are dropped.
func (s *AnalysisService) fetchFirms(ctx context.Context) ([]dto.FirmEntry, error) {
	ctx, cancel := s.stepContext(ctx)
	defer cancel()

	allFirms, err := s.store.ListFirms(ctx)
	if err != nil {
		return nil, &StepError{Step: StepFetchFirms, Err: err}
	}
	predictions, err := s.store.ListReturnPredictions(ctx)
	if err != nil {
		return nil, &StepError{Step: StepFetchFirms, Err: err}
	}

	return joinSortedChildren(predictions, allFirms,
		func(p models.ReturnPrediction) int64 { return p.FirmaID },
		func(f models.Firm) int64 { return f.ID },
		func(p models.ReturnPrediction, f models.Firm) dto.FirmEntry {
			return dto.FirmEntry{
				ID:            f.ID,
				Ad:            f.Ad,
				Ciro:          f.Ciro,
				TahminiGetiri: p.TahminiGetiri,
			}
		}), nil
}

func (s *AnalysisService) fetchSustainability(ctx context.Context) ([]dto.SustainabilityEntry, error) {
	ctx, cancel := s.stepContext(ctx)
	defer cancel()

	allFirms, err := s.store.ListFirms(ctx)
	if err != nil {
		return nil, &StepError{Step: StepFetchSustainability, Err: err}
	}
	scores, err := s.store.ListTopSustainabilityScores(ctx, sustainabilityLimit)
	if err != nil {
		return nil, &StepError{Step: StepFetchSustainability, Err: err}
	}

	return joinSortedChildren(scores, allFirms,
		func(sc models.SustainabilityScore) int64 { return sc.FirmaID },
		func(f models.Firm) int64 { return f.ID },
		func(sc models.SustainabilityScore, f models.Firm) dto.SustainabilityEntry {
			return dto.SustainabilityEntry{Ad: f.Ad, Puan: sc.Puan}
		}), nil
}

// fetchRecycling needs no join: firmalar holds both the name and the
// rate, so the query orders and caps on its own.
func (s *AnalysisService) fetchRecycling(ctx context.Context) ([]dto.RecyclingEntry, error) {
	ctx, cancel := s.stepContext(ctx)
	defer cancel()

	firms, err := s.store.ListTopRecyclingFirms(ctx, recyclingLimit)
	if err != nil {
		return nil, &StepError{Step: StepFetchRecycling, Err: err}
	}

	entries := make([]dto.RecyclingEntry, 0, len(firms))
	for _, f := range firms {
		entries = append(entries, dto.RecyclingEntry{
			Ad:               f.Ad,
			GeriDonusumOrani: f.GeriDonusumOrani,
		})
	}
	return entries, nil
}

func (s *AnalysisService) fetchEntrepreneurs(ctx context.Context) ([]dto.EntrepreneurEntry, error) {
	ctx, cancel := s.stepContext(ctx)
	defer cancel()

	entrepreneurs, err := s.store.ListEntrepreneurs(ctx)
	if err != nil {
		return nil, &StepError{Step: StepFetchEntrepreneurs, Err: err}
	}
	scores, err := s.store.ListTopCompatibilityScores(ctx, entrepreneurLimit)
	if err != nil {
		return nil, &StepError{Step: StepFetchEntrepreneurs, Err: err}
	}

	return joinSortedChildren(scores, entrepreneurs,
		func(sc models.CompatibilityScore) int64 { return sc.GirisimciID },
		func(e models.Entrepreneur) int64 { return e.ID },
		func(sc models.CompatibilityScore, e models.Entrepreneur) dto.EntrepreneurEntry {
			return dto.EntrepreneurEntry{
				ID:                  e.ID,
				IsletmeAdi:          e.IsletmeAdi,
				Puan:                sc.Puan,
				KadinCalisanOrani:   e.KadinCalisanOrani,
				EngelliCalisanOrani: e.EngelliCalisanOrani,
				KurulmaYili:         e.KurulmaYili,
			}
		}), nil
}
