package main

import (
	"context"
	"log"
	"time"

	"eko-analiz/pkg/config"
	"eko-analiz/pkg/logger"
	"eko-analiz/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Development seeder: connects to the project's direct Postgres port and
// fills firmalar/girisimciler plus the prediction tables with sample
// rows, so the dashboard renders without running the offline scorer.
// Existing rows are wiped first; do not point this at production data.

type firmRow struct {
	id               int64
	ad               string
	ciro             string
	geriDonusumOrani float64
	tahminiGetiri    float64
	uyumPuani        float64
}

type entrepreneurRow struct {
	id           int64
	isletmeAdi   string
	kadinOrani   float64
	engelliOrani float64
	kurulmaYili  int
	uyumPuani    float64
}

var firms = []firmRow{
	{1, "Anadolu Tekstil", "12.000.000", 42.5, 78.4, 81.2},
	{2, "Ege Dokuma", "8.500.000", 65.0, 71.9, 88.6},
	{3, "Marmara Konfeksiyon", "21.300.000", 30.2, 84.1, 64.3},
	{4, "Karadeniz Iplik", "5.750.000", 58.7, 55.2, 79.0},
	{5, "Akdeniz Kumas", "15.900.000", 72.1, 69.8, 91.4},
	{6, "Trakya Orme", "3.200.000", 25.4, 38.6, 52.7},
	{7, "Kapadokya Hali", "9.100.000", 48.9, 61.3, 73.5},
	{8, "Toros Giyim", "18.400.000", 81.3, 76.5, 94.1},
}

var entrepreneurs = []entrepreneurRow{
	{1, "Yesil Atolye", 70, 20, 2018, 80},
	{2, "Donusum Tasarim", 55, 10, 2020, 67.5},
	{3, "Eko Moda", 40, 35, 2015, 72.8},
	{4, "Lif Studyo", 85, 15, 2021, 88.2},
	{5, "Tekrar Tekstil", 60, 25, 2017, 59.4},
	{6, "Mavi Dikis", 30, 5, 2012, 41.6},
	{7, "Organik Orgu", 75, 30, 2019, 83.9},
	{8, "Kumas Kolektifi", 50, 18, 2016, 62.1},
	{9, "Iplik Inisiyatifi", 65, 22, 2022, 77.3},
	{10, "Atik Atolyesi", 45, 28, 2014, 54.8},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := truncateAll(ctx, db); err != nil {
		appLogger.Fatal("Failed to clear existing rows", zap.Error(err))
	}
	if err := seedFirms(ctx, db); err != nil {
		appLogger.Fatal("Failed to seed firms", zap.Error(err))
	}
	if err := seedEntrepreneurs(ctx, db); err != nil {
		appLogger.Fatal("Failed to seed entrepreneurs", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.Int("firms", len(firms)),
		zap.Int("entrepreneurs", len(entrepreneurs)),
	)
}

func truncateAll(ctx context.Context, db *pgxpool.Pool) error {
	// Prediction tables first, they reference the entity tables.
	tables := []string{"firma_tahminleme", "girisimci_tahminleme", "firmalar", "girisimciler"}
	for _, table := range tables {
		query := squirrel.Delete(table).PlaceholderFormat(squirrel.Dollar)
		sql, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}
	return nil
}

func seedFirms(ctx context.Context, db *pgxpool.Pool) error {
	firmBuilder := squirrel.Insert("firmalar").
		Columns("id", "ad", "ciro", "geri_donusum_orani").
		PlaceholderFormat(squirrel.Dollar)
	predBuilder := squirrel.Insert("firma_tahminleme").
		Columns("id", "firma_id", "tahmini_getiri", "surdurulebilirlik_uyum_puani", "olusturulma_tarihi").
		PlaceholderFormat(squirrel.Dollar)

	now := time.Now().UTC()
	for _, f := range firms {
		firmBuilder = firmBuilder.Values(f.id, f.ad, f.ciro, f.geriDonusumOrani)
		predBuilder = predBuilder.Values(uuid.New(), f.id, f.tahminiGetiri, f.uyumPuani, now)
	}

	for _, builder := range []squirrel.InsertBuilder{firmBuilder, predBuilder} {
		sql, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}
	return nil
}

func seedEntrepreneurs(ctx context.Context, db *pgxpool.Pool) error {
	entBuilder := squirrel.Insert("girisimciler").
		Columns("id", "isletme_adi", "kadin_calisan_orani", "engelli_calisan_orani", "kurulma_yili").
		PlaceholderFormat(squirrel.Dollar)
	predBuilder := squirrel.Insert("girisimci_tahminleme").
		Columns("id", "girisimci_id", "kriter_uyumluluk_puani", "gerceklesme_tarihi").
		PlaceholderFormat(squirrel.Dollar)

	now := time.Now().UTC()
	for _, e := range entrepreneurs {
		entBuilder = entBuilder.Values(e.id, e.isletmeAdi, e.kadinOrani, e.engelliOrani, e.kurulmaYili)
		predBuilder = predBuilder.Values(uuid.New(), e.id, e.uyumPuani, now)
	}

	for _, builder := range []squirrel.InsertBuilder{entBuilder, predBuilder} {
		sql, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}
	return nil
}
