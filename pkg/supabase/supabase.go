package supabase

import (
	"strings"

	"eko-analiz/pkg/config"

	"github.com/supabase-community/postgrest-go"
	"go.uber.org/zap"
)

// NewClient builds the process-wide PostgREST client for the hosted
// project. The client is constructed even when the secrets are absent;
// callers are expected to validate configuration before issuing queries,
// so an unconfigured process can still boot and report the problem per
// request.
func NewClient(cfg *config.SupabaseConfig, logger *zap.Logger) *postgrest.Client {
	restURL := strings.TrimRight(cfg.URL, "/") + "/rest/v1"

	client := postgrest.NewClient(restURL, "public", map[string]string{
		"apikey": cfg.ServiceRoleKey,
	})
	client.SetAuthToken(cfg.ServiceRoleKey)

	if cfg.URL != "" {
		logger.Info("Supabase client initialized", zap.String("url", restURL))
	} else {
		logger.Warn("Supabase credentials are not configured; analysis requests will fail until they are set")
	}

	return client
}
