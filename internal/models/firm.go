package models

// Firm is a row of the firmalar table. Ciro stays a string: the column
// holds Turkish-locale formatted figures ("12.000.000,50") and is only
// normalized for display, never aggregated.
type Firm struct {
	ID   int64  `json:"id"`
	Ad   string `json:"ad"`
	Ciro string `json:"ciro"`
}

// ReturnPrediction is an offline-computed forecast row from
// firma_tahminleme. Rows with a null tahmini_getiri are filtered out by
// the query and never reach this type.
type ReturnPrediction struct {
	FirmaID       int64   `json:"firma_id"`
	TahminiGetiri float64 `json:"tahmini_getiri"`
}

// SustainabilityScore is the surdurulebilirlik_uyum_puani component of a
// firma_tahminleme row.
type SustainabilityScore struct {
	FirmaID int64   `json:"firma_id"`
	Puan    float64 `json:"surdurulebilirlik_uyum_puani"`
}

// RecyclingFirm carries the recycling-rate ranking; it needs no join
// because firmalar holds both columns.
type RecyclingFirm struct {
	Ad               string  `json:"ad"`
	GeriDonusumOrani float64 `json:"geri_donusum_orani"`
}
