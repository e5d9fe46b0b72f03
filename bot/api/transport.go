package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/absmach/supermq"
	apiutil "github.com/absmach/supermq/api/http/util"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/pkg/api"
)

func MakeHandler(svc bot.Service, logger *slog.Logger, instanceID string) http.Handler {
	mux := chi.NewRouter()

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.Route("/competitions", func(r chi.Router) {
		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			listCompetitionsEndpoint(svc),
			decodeListEntityReq,
			api.EncodeResponse,
			opts...,
		), "list-competitions").ServeHTTP)
		r.Route("/{competitionID}", func(r chi.Router) {
			r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
				getCompetitionEndpoint(svc),
				decodeEntityReq("competitionID"),
				api.EncodeResponse,
				opts...,
			), "get-competition").ServeHTTP)
			r.Get("/announcement", otelhttp.NewHandler(kithttp.NewServer(
				lastAnnouncementEndpoint(svc),
				decodeEntityReq("competitionID"),
				api.EncodeResponse,
				opts...,
			), "last-announcement").ServeHTTP)
		})
	})

	mux.Post("/sweep", otelhttp.NewHandler(kithttp.NewServer(
		sweepEndpoint(svc),
		decodeSweepReq,
		api.EncodeResponse,
		opts...,
	), "sweep").ServeHTTP)

	mux.Get("/health", supermq.Health("announcer", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeEntityReq(key string) kithttp.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (any, error) {
		return entityReq{
			id: chi.URLParam(r, key),
		}, nil
	}
}

func decodeListEntityReq(_ context.Context, r *http.Request) (any, error) {
	o, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Join(apiutil.ErrValidation, err)
	}

	l, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Join(apiutil.ErrValidation, err)
	}

	return listEntityReq{
		offset: o,
		limit:  l,
	}, nil
}

func decodeSweepReq(_ context.Context, _ *http.Request) (any, error) {
	return sweepReq{}, nil
}
