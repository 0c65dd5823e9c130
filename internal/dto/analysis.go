package dto

// AnalysisResponse is the single payload the dashboard loads per page
// view: a flat firm ranking, three chart series and the default
// recalculation parameters.
type AnalysisResponse struct {
	Firms    []FirmEntry `json:"firms"`
	Charts   Charts      `json:"charts"`
	Defaults Defaults    `json:"defaults"`
}

// FirmEntry is a firm joined with its predicted return, ordered by
// tahmini_getiri descending. Firms without a prediction are excluded.
type FirmEntry struct {
	ID            int64   `json:"id"`
	Ad            string  `json:"ad"`
	Ciro          string  `json:"ciro"`
	TahminiGetiri float64 `json:"tahmini_getiri"`
}

type Charts struct {
	Sustainability []SustainabilityEntry `json:"sustainability"`
	Recycling      []RecyclingEntry      `json:"recycling"`
	Entrepreneur   []EntrepreneurEntry   `json:"entrepreneur"`
}

type SustainabilityEntry struct {
	Ad   string  `json:"ad"`
	Puan float64 `json:"surdurulebilirlik_uyum_puani"`
}

type RecyclingEntry struct {
	Ad               string  `json:"ad"`
	GeriDonusumOrani float64 `json:"geri_donusum_orani"`
}

// EntrepreneurEntry carries the stored base score plus the actual ratios
// and founding year the client needs to recompute the score against its
// reference parameters.
type EntrepreneurEntry struct {
	ID                  int64   `json:"id"`
	IsletmeAdi          string  `json:"isletme_adi"`
	Puan                float64 `json:"kriter_uyumluluk_puani"`
	KadinCalisanOrani   float64 `json:"kadin_calisan_orani"`
	EngelliCalisanOrani float64 `json:"engelli_calisan_orani"`
	KurulmaYili         int     `json:"kurulma_yili"`
}

// Defaults are fixed server-side and freely overridden client-side; they
// are never derived from data and never written back.
type Defaults struct {
	FemaleRatio     float64 `json:"femaleRatio"`
	DisabledRatio   float64 `json:"disabledRatio"`
	FoundingYear    int     `json:"foundingYear"`
	RecyclingTarget float64 `json:"recyclingTarget"`
}
