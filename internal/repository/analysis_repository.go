package repository

import (
	"context"

	"eko-analiz/internal/models"

	"github.com/supabase-community/postgrest-go"
	"go.uber.org/zap"
)

// AnalysisRepository issues the fixed set of read-only queries behind the
// dashboard. PostgREST cannot order a parent table by a joined column, so
// prediction rows are fetched pre-sorted and capped on their own and the
// service joins them to their parents in memory.
type AnalysisRepository struct {
	db     *postgrest.Client
	logger *zap.Logger
}

func NewAnalysisRepository(db *postgrest.Client, logger *zap.Logger) *AnalysisRepository {
	return &AnalysisRepository{
		db:     db,
		logger: logger,
	}
}

// entrepreneurRow mirrors girisimciler with its nullable columns; rows are
// defaulted here, exactly once, before they leave the repository.
type entrepreneurRow struct {
	ID                  int64    `json:"id"`
	IsletmeAdi          string   `json:"isletme_adi"`
	KadinCalisanOrani   *float64 `json:"kadin_calisan_orani"`
	EngelliCalisanOrani *float64 `json:"engelli_calisan_orani"`
	KurulmaYili         *int     `json:"kurulma_yili"`
}

const defaultKurulmaYili = 2000

func (r *AnalysisRepository) ListFirms(ctx context.Context) ([]models.Firm, error) {
	var firms []models.Firm
	_, err := r.db.From("firmalar").
		Select("id,ad,ciro", "", false).
		ExecuteToWithContext(ctx, &firms)
	if err != nil {
		return nil, err
	}
	return firms, nil
}

func (r *AnalysisRepository) ListReturnPredictions(ctx context.Context) ([]models.ReturnPrediction, error) {
	var predictions []models.ReturnPrediction
	_, err := r.db.From("firma_tahminleme").
		Select("firma_id,tahmini_getiri", "", false).
		Not("tahmini_getiri", "is", "null").
		Order("tahmini_getiri", &postgrest.OrderOpts{Ascending: false}).
		ExecuteToWithContext(ctx, &predictions)
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *AnalysisRepository) ListTopSustainabilityScores(ctx context.Context, limit int) ([]models.SustainabilityScore, error) {
	var scores []models.SustainabilityScore
	_, err := r.db.From("firma_tahminleme").
		Select("firma_id,surdurulebilirlik_uyum_puani", "", false).
		Not("surdurulebilirlik_uyum_puani", "is", "null").
		Order("surdurulebilirlik_uyum_puani", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteToWithContext(ctx, &scores)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *AnalysisRepository) ListTopRecyclingFirms(ctx context.Context, limit int) ([]models.RecyclingFirm, error) {
	var firms []models.RecyclingFirm
	_, err := r.db.From("firmalar").
		Select("ad,geri_donusum_orani", "", false).
		Not("geri_donusum_orani", "is", "null").
		Order("geri_donusum_orani", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteToWithContext(ctx, &firms)
	if err != nil {
		return nil, err
	}
	return firms, nil
}

func (r *AnalysisRepository) ListEntrepreneurs(ctx context.Context) ([]models.Entrepreneur, error) {
	var rows []entrepreneurRow
	_, err := r.db.From("girisimciler").
		Select("id,isletme_adi,kadin_calisan_orani,engelli_calisan_orani,kurulma_yili", "", false).
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return nil, err
	}

	entrepreneurs := make([]models.Entrepreneur, 0, len(rows))
	for _, row := range rows {
		e := models.Entrepreneur{
			ID:          row.ID,
			IsletmeAdi:  row.IsletmeAdi,
			KurulmaYili: defaultKurulmaYili,
		}
		if row.KadinCalisanOrani != nil {
			e.KadinCalisanOrani = *row.KadinCalisanOrani
		}
		if row.EngelliCalisanOrani != nil {
			e.EngelliCalisanOrani = *row.EngelliCalisanOrani
		}
		if row.KurulmaYili != nil {
			e.KurulmaYili = *row.KurulmaYili
		}
		entrepreneurs = append(entrepreneurs, e)
	}
	return entrepreneurs, nil
}

func (r *AnalysisRepository) ListTopCompatibilityScores(ctx context.Context, limit int) ([]models.CompatibilityScore, error) {
	var scores []models.CompatibilityScore
	_, err := r.db.From("girisimci_tahminleme").
		Select("girisimci_id,kriter_uyumluluk_puani", "", false).
		Not("kriter_uyumluluk_puani", "is", "null").
		Order("kriter_uyumluluk_puani", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteToWithContext(ctx, &scores)
	if err != nil {
		return nil, err
	}
	return scores, nil
}
