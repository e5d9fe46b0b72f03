package api

import (
	"context"
	"errors"

	apiutil "github.com/absmach/supermq/api/http/util"
	"github.com/go-kit/kit/endpoint"

	"github.com/safe-scan-ai/announcer/bot"
	pkgerrors "github.com/safe-scan-ai/announcer/pkg/errors"
)

func listCompetitionsEndpoint(svc bot.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req, ok := request.(listEntityReq)
		if !ok {
			return listCompetitionsResponse{}, errors.Join(apiutil.ErrValidation, pkgerrors.ErrInvalidData)
		}
		if err := req.validate(); err != nil {
			return listCompetitionsResponse{}, errors.Join(apiutil.ErrValidation, err)
		}

		page, err := svc.ListCompetitions(ctx, req.offset, req.limit)
		if err != nil {
			return listCompetitionsResponse{}, err
		}

		return listCompetitionsResponse{
			Page: page,
		}, nil
	}
}

func getCompetitionEndpoint(svc bot.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req, ok := request.(entityReq)
		if !ok {
			return competitionResponse{}, errors.Join(apiutil.ErrValidation, pkgerrors.ErrInvalidData)
		}
		if err := req.validate(); err != nil {
			return competitionResponse{}, errors.Join(apiutil.ErrValidation, err)
		}

		def, err := svc.GetCompetition(ctx, req.id)
		if err != nil {
			return competitionResponse{}, err
		}

		return competitionResponse{
			Definition: def,
		}, nil
	}
}

func lastAnnouncementEndpoint(svc bot.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req, ok := request.(entityReq)
		if !ok {
			return announcementResponse{}, errors.Join(apiutil.ErrValidation, pkgerrors.ErrInvalidData)
		}
		if err := req.validate(); err != nil {
			return announcementResponse{}, errors.Join(apiutil.ErrValidation, err)
		}

		announcement, err := svc.LastAnnouncement(ctx, req.id)
		if err != nil {
			return announcementResponse{}, err
		}

		return announcementResponse{
			Announcement: announcement,
		}, nil
	}
}

func sweepEndpoint(svc bot.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req, ok := request.(sweepReq)
		if !ok {
			return sweepResponse{}, errors.Join(apiutil.ErrValidation, pkgerrors.ErrInvalidData)
		}
		if err := req.validate(); err != nil {
			return sweepResponse{}, errors.Join(apiutil.ErrValidation, err)
		}

		if err := svc.Sweep(ctx); err != nil {
			return sweepResponse{}, err
		}

		return sweepResponse{started: true}, nil
	}
}
