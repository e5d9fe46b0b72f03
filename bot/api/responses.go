package api

import (
	"net/http"

	"github.com/absmach/supermq"

	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/competition"
)

var (
	_ supermq.Response = (*competitionResponse)(nil)
	_ supermq.Response = (*listCompetitionsResponse)(nil)
	_ supermq.Response = (*announcementResponse)(nil)
	_ supermq.Response = (*sweepResponse)(nil)
)

type competitionResponse struct {
	competition.Definition
}

func (c competitionResponse) Code() int {
	return http.StatusOK
}

func (c competitionResponse) Headers() map[string]string {
	return map[string]string{}
}

func (c competitionResponse) Empty() bool {
	return false
}

type listCompetitionsResponse struct {
	competition.Page
}

func (l listCompetitionsResponse) Code() int {
	return http.StatusOK
}

func (l listCompetitionsResponse) Headers() map[string]string {
	return map[string]string{}
}

func (l listCompetitionsResponse) Empty() bool {
	return false
}

type announcementResponse struct {
	bot.Announcement
}

func (a announcementResponse) Code() int {
	return http.StatusOK
}

func (a announcementResponse) Headers() map[string]string {
	return map[string]string{}
}

func (a announcementResponse) Empty() bool {
	return false
}

type sweepResponse struct {
	started bool
}

func (s sweepResponse) Code() int {
	return http.StatusAccepted
}

func (s sweepResponse) Headers() map[string]string {
	return map[string]string{}
}

func (s sweepResponse) Empty() bool {
	return true
}
