// @title         TrendLens API
// @version       0.1.0
// @description   Filter driven analytics over the creator content warehouse

package main

import (
	"context"

	"trendlens/internal/modkit/repokit"
	"trendlens/internal/platform/config"
	"trendlens/internal/platform/logger"
	phttp "trendlens/internal/platform/net/http"
	"trendlens/internal/platform/store"

	"trendlens/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // warehouse lives under SERVICE_CLICKHOUSE_*
	objCfg := root.Prefix("SERVICE_EXPORT_")    // export sink lives under SERVICE_EXPORT_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (warehouse + export sink)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "trendlens",
			CH: store.CHConfig{
				Enabled:             true,
				URL:                 chCfg.MustString("DBURL"),
				ClientName:          "trendlens",
				ClientTag:           "api",
				MaxExecutionSeconds: chCfg.MayInt("MAX_EXECUTION_SECONDS", 30),
			},
			Obj: store.ObjConfig{
				Enabled:   objCfg.MayBool("ENABLED", true),
				Endpoint:  objCfg.MayString("ENDPOINT", "localhost:9000"),
				AccessKey: objCfg.MayString("ACCESS_KEY", ""),
				SecretKey: objCfg.MayString("SECRET_KEY", ""),
				Bucket:    objCfg.MayString("BUCKET", "trendlens-exports"),
				UseSSL:    objCfg.MayBool("SSL", false),
				URLExpiry: objCfg.MayDuration("URL_EXPIRY", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// refuse to serve with a half open seam
	repokit.MustGuard(context.Background(), st)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
