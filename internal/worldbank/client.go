// Package worldbank is a minimal client for the World Bank API v2, enough
// to pull country metadata and per-country-year indicator series.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/statworkshop/dataprep/internal/provider"
)

const (
	// DefaultBaseURL is the World Bank API endpoint.
	DefaultBaseURL = "https://api.worldbank.org/v2"

	// PageSize is the number of rows requested per page.
	PageSize = 1000

	// PopulationTotal is the indicator code for total population.
	PopulationTotal = "SP.POP.TOTL"

	// GDPPerCapita is the indicator code for GDP per capita in current USD.
	GDPPerCapita = "NY.GDP.PCAP.CD"
)

// Client is an HTTP client for the World Bank API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new World Bank API client. An empty baseURL selects
// the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// The public API throttles aggressively; stay well under it.
		limiter: rate.NewLimiter(rate.Limit(10), 1),
	}
}

// ListCountries fetches the full country listing and drops aggregate rows
// (regions, income groups), returning one entry per real country.
func (c *Client) ListCountries(ctx context.Context) ([]Country, error) {
	var all []Country

	err := c.fetchAllPages(ctx, c.baseURL+"/country", func(rows json.RawMessage) (int, error) {
		var page []apiCountry
		if err := json.Unmarshal(rows, &page); err != nil {
			return 0, fmt.Errorf("decode countries: %w", err)
		}
		for _, r := range page {
			region := strings.TrimSpace(r.Region.Value)
			if region == "Aggregates" {
				continue
			}
			all = append(all, Country{
				ISO3:   r.ID,
				Name:   r.Name,
				Region: region,
			})
		}
		return len(page), nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// FetchIndicator fetches one indicator series for all countries over the
// closed year range [yearFrom, yearTo]. Years with no reported value come
// back with a nil Value.
func (c *Client) FetchIndicator(ctx context.Context, indicator string, yearFrom, yearTo int) ([]Observation, error) {
	endpoint := fmt.Sprintf("%s/country/all/indicator/%s", c.baseURL, url.PathEscape(indicator))

	var all []Observation
	err := c.fetchAllPages(ctx, endpoint+"?date="+fmt.Sprintf("%d:%d", yearFrom, yearTo), func(rows json.RawMessage) (int, error) {
		var page []apiObservation
		if err := json.Unmarshal(rows, &page); err != nil {
			return 0, fmt.Errorf("decode %s: %w", indicator, err)
		}
		for _, r := range page {
			if r.CountryISO3 == "" {
				continue
			}
			year, err := strconv.Atoi(r.Date)
			if err != nil {
				continue
			}
			all = append(all, Observation{
				ISO3:  r.CountryISO3,
				Year:  year,
				Value: r.Value,
			})
		}
		return len(page), nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// fetchAllPages walks the API's page-numbered pagination, handing each
// page's data element to consume and stopping after the last page.
func (c *Client) fetchAllPages(ctx context.Context, endpoint string, consume func(rows json.RawMessage) (int, error)) error {
	page := 1

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		fullURL := fmt.Sprintf("%s%sformat=json&per_page=%d&page=%d", endpoint, sep, PageSize, page)

		start := time.Now()
		provider.LogRequest("worldbank", "GET", endpoint, map[string]interface{}{
			"page": page,
		})

		req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			provider.LogError("worldbank", "fetch", err)
			return fmt.Errorf("worldbank request: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			err := fmt.Errorf("worldbank status %d", resp.StatusCode)
			provider.LogError("worldbank", "fetch", err)
			return err
		}

		var raw []json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
			resp.Body.Close()
			provider.LogError("worldbank", "decode", err)
			return fmt.Errorf("decode worldbank: %w", err)
		}
		resp.Body.Close()

		// An error envelope is a one-element array carrying messages.
		if len(raw) < 2 {
			var msg apiMessage
			if len(raw) == 1 && json.Unmarshal(raw[0], &msg) == nil && len(msg.Message) > 0 {
				err := fmt.Errorf("worldbank: %s: %s", msg.Message[0].Key, msg.Message[0].Value)
				provider.LogError("worldbank", "fetch", err)
				return err
			}
			return fmt.Errorf("worldbank: unexpected envelope with %d elements", len(raw))
		}

		var meta pageMeta
		if err := json.Unmarshal(raw[0], &meta); err != nil {
			return fmt.Errorf("decode worldbank page meta: %w", err)
		}

		count, err := consume(raw[1])
		if err != nil {
			return err
		}

		provider.LogResponse("worldbank", resp.StatusCode, time.Since(start), count)

		if meta.Pages == 0 || page >= meta.Pages {
			return nil
		}
		page++
	}
}
