package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eko-analiz/pkg/config"
	"eko-analiz/pkg/supabase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePostgREST serves canned JSON per table and records the last request
// so tests can check headers and query parameters.
type fakePostgREST struct {
	responses map[string]string
	status    int
	lastReq   *http.Request
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.lastReq = r.Clone(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
		return
	}
	body, ok := f.responses[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
		return
	}
	_, _ = w.Write([]byte(body))
}

func newTestRepository(t *testing.T, fake *fakePostgREST) *AnalysisRepository {
	t.Helper()
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	client := supabase.NewClient(&config.SupabaseConfig{
		URL:            ts.URL,
		ServiceRoleKey: "service-role-key",
		QueryTimeout:   time.Second,
	}, zap.NewNop())

	return NewAnalysisRepository(client, zap.NewNop())
}

func TestListFirms_DecodesRowsAndSendsCredentials(t *testing.T) {
	fake := &fakePostgREST{responses: map[string]string{
		"/rest/v1/firmalar": `[{"id":1,"ad":"Acme","ciro":"12.000.000"},{"id":2,"ad":"Beta","ciro":"8.500.000"}]`,
	}}
	repo := newTestRepository(t, fake)

	firms, err := repo.ListFirms(context.Background())
	require.NoError(t, err)

	require.Len(t, firms, 2)
	assert.Equal(t, int64(1), firms[0].ID)
	assert.Equal(t, "Acme", firms[0].Ad)
	assert.Equal(t, "12.000.000", firms[0].Ciro)

	require.NotNil(t, fake.lastReq)
	assert.Equal(t, "Bearer service-role-key", fake.lastReq.Header.Get("Authorization"))
	assert.Equal(t, "service-role-key", fake.lastReq.Header.Get("apikey"))
	assert.Equal(t, "id,ad,ciro", fake.lastReq.URL.Query().Get("select"))
}

func TestListTopSustainabilityScores_QueryShape(t *testing.T) {
	fake := &fakePostgREST{responses: map[string]string{
		"/rest/v1/firma_tahminleme": `[{"firma_id":1,"surdurulebilirlik_uyum_puani":91.2}]`,
	}}
	repo := newTestRepository(t, fake)

	scores, err := repo.ListTopSustainabilityScores(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, int64(1), scores[0].FirmaID)
	assert.Equal(t, 91.2, scores[0].Puan)

	query := fake.lastReq.URL.Query()
	assert.Equal(t, "7", query.Get("limit"))
	assert.Contains(t, query.Get("order"), "surdurulebilirlik_uyum_puani.desc")
	assert.Equal(t, "not.is.null", query.Get("surdurulebilirlik_uyum_puani"))
}

func TestListTopRecyclingFirms_QueryShape(t *testing.T) {
	fake := &fakePostgREST{responses: map[string]string{
		"/rest/v1/firmalar": `[{"ad":"Beta","geri_donusum_orani":72.5}]`,
	}}
	repo := newTestRepository(t, fake)

	firms, err := repo.ListTopRecyclingFirms(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, firms, 1)
	assert.Equal(t, 72.5, firms[0].GeriDonusumOrani)

	query := fake.lastReq.URL.Query()
	assert.Equal(t, "10", query.Get("limit"))
	assert.Contains(t, query.Get("order"), "geri_donusum_orani.desc")
	assert.Equal(t, "not.is.null", query.Get("geri_donusum_orani"))
}

func TestListEntrepreneurs_DefaultsNullColumns(t *testing.T) {
	fake := &fakePostgREST{responses: map[string]string{
		"/rest/v1/girisimciler": `[
			{"id":10,"isletme_adi":"Yesil Atolye","kadin_calisan_orani":70,"engelli_calisan_orani":20,"kurulma_yili":2018},
			{"id":11,"isletme_adi":"Eko Moda","kadin_calisan_orani":null,"engelli_calisan_orani":null,"kurulma_yili":null}
		]`,
	}}
	repo := newTestRepository(t, fake)

	entrepreneurs, err := repo.ListEntrepreneurs(context.Background())
	require.NoError(t, err)
	require.Len(t, entrepreneurs, 2)

	assert.Equal(t, 70.0, entrepreneurs[0].KadinCalisanOrani)
	assert.Equal(t, 2018, entrepreneurs[0].KurulmaYili)

	// Null columns are defaulted once, here at the boundary.
	assert.Equal(t, 0.0, entrepreneurs[1].KadinCalisanOrani)
	assert.Equal(t, 0.0, entrepreneurs[1].EngelliCalisanOrani)
	assert.Equal(t, 2000, entrepreneurs[1].KurulmaYili)
}

func TestListReturnPredictions_ServerError(t *testing.T) {
	fake := &fakePostgREST{status: http.StatusInternalServerError}
	repo := newTestRepository(t, fake)

	_, err := repo.ListReturnPredictions(context.Background())
	require.Error(t, err)
}
