package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	competitionsEndpoint = "/competitions"
	sweepEndpoint        = "/sweep"
)

type Competition struct {
	ID              string   `json:"competition_id"`
	Category        string   `json:"category"`
	EvaluationTimes []string `json:"evaluation_times"`
	DatasetRepo     string   `json:"dataset_hf_repo"`
	DatasetFilename string   `json:"dataset_hf_filename"`
	DatasetRepoType string   `json:"dataset_hf_repo_type"`
}

type CompetitionPage struct {
	Offset       uint64        `json:"offset"`
	Limit        uint64        `json:"limit"`
	Total        uint64        `json:"total"`
	Competitions []Competition `json:"competitions"`
}

type Announcement struct {
	CompetitionID string    `json:"competition_id"`
	Occurrence    time.Time `json:"occurrence"`
}

func (sdk *announcerSDK) ListCompetitions(offset, limit uint64) (CompetitionPage, error) {
	queries := make([]string, 0)
	if offset > 0 {
		queries = append(queries, fmt.Sprintf("offset=%d", offset))
	}
	if limit > 0 {
		queries = append(queries, fmt.Sprintf("limit=%d", limit))
	}

	url := sdk.announcerURL + competitionsEndpoint
	if len(queries) > 0 {
		url += "?" + strings.Join(queries, "&")
	}

	body, err := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if err != nil {
		return CompetitionPage{}, err
	}

	var page CompetitionPage
	if err := json.Unmarshal(body, &page); err != nil {
		return CompetitionPage{}, err
	}

	return page, nil
}

func (sdk *announcerSDK) GetCompetition(id string) (Competition, error) {
	url := sdk.announcerURL + competitionsEndpoint + "/" + id

	body, err := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if err != nil {
		return Competition{}, err
	}

	var c Competition
	if err := json.Unmarshal(body, &c); err != nil {
		return Competition{}, err
	}

	return c, nil
}

func (sdk *announcerSDK) LastAnnouncement(id string) (Announcement, error) {
	url := sdk.announcerURL + competitionsEndpoint + "/" + id + "/announcement"

	body, err := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if err != nil {
		return Announcement{}, err
	}

	var a Announcement
	if err := json.Unmarshal(body, &a); err != nil {
		return Announcement{}, err
	}

	return a, nil
}

func (sdk *announcerSDK) Sweep() error {
	url := sdk.announcerURL + sweepEndpoint

	if _, err := sdk.processRequest(http.MethodPost, url, nil, http.StatusAccepted); err != nil {
		return err
	}

	return nil
}
