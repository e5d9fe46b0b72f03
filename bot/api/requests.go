package api

import (
	apiutil "github.com/absmach/supermq/api/http/util"
)

type entityReq struct {
	id string
}

func (e *entityReq) validate() error {
	if e.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type listEntityReq struct {
	offset, limit uint64
}

func (e *listEntityReq) validate() error {
	return nil
}

type sweepReq struct{}

func (s *sweepReq) validate() error {
	return nil
}
