package sdk

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
)

const CTJSON string = "application/json"

type SDK interface {
	// ListCompetitions lists configured competitions.
	//
	// example:
	//  page, _ := sdk.ListCompetitions(0, 10)
	//  fmt.Println(page)
	ListCompetitions(offset uint64, limit uint64) (CompetitionPage, error)

	// GetCompetition gets a competition by id.
	//
	// example:
	//  c, _ := sdk.GetCompetition("melanoma-1")
	//  fmt.Println(c)
	GetCompetition(id string) (Competition, error)

	// LastAnnouncement gets the last announced occurrence of a competition.
	//
	// example:
	//  a, _ := sdk.LastAnnouncement("melanoma-1")
	//  fmt.Println(a)
	LastAnnouncement(id string) (Announcement, error)

	// Sweep triggers a refresh-and-announce cycle.
	//
	// example:
	//  _ = sdk.Sweep()
	Sweep() error
}

type announcerSDK struct {
	announcerURL string
	client       *http.Client
}

type Config struct {
	AnnouncerURL    string
	TLSVerification bool
}

func NewSDK(cfg Config) SDK {
	return &announcerSDK{
		announcerURL: cfg.AnnouncerURL,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !cfg.TLSVerification,
				},
			},
		},
	}
}

func (sdk *announcerSDK) processRequest(method, reqURL string, data []byte, expectedRespCode int) ([]byte, error) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return []byte{}, err
	}

	req.Header.Add("Content-Type", CTJSON)

	resp, err := sdk.client.Do(req)
	if err != nil {
		return []byte{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []byte{}, err
	}

	if resp.StatusCode != expectedRespCode {
		return []byte{}, fmt.Errorf("unexpected response code: %d", resp.StatusCode)
	}

	return body, nil
}
