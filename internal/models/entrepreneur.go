package models

// Entrepreneur is a row of the girisimciler table, fully defaulted at the
// repository boundary: absent ratios become 0 and an absent founding year
// becomes 2000, so downstream arithmetic never sees a null.
type Entrepreneur struct {
	ID                  int64   `json:"id"`
	IsletmeAdi          string  `json:"isletme_adi"`
	KadinCalisanOrani   float64 `json:"kadin_calisan_orani"`
	EngelliCalisanOrani float64 `json:"engelli_calisan_orani"`
	KurulmaYili         int     `json:"kurulma_yili"`
}

// CompatibilityScore is an offline-computed score row from
// girisimci_tahminleme.
type CompatibilityScore struct {
	GirisimciID int64   `json:"girisimci_id"`
	Puan        float64 `json:"kriter_uyumluluk_puani"`
}
