package ratesource

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

const ecbDateLayout = "2006-01-02"

// ecbEnvelope maps the ECB reference-rates document:
//
//	<gesmes:Envelope>
//	  <Cube>
//	    <Cube time="2024-03-01">
//	      <Cube currency="USD" rate="1.0811"/>
//	      ...
type ecbEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Days    []ecbDay `xml:"Cube>Cube"`
}

type ecbDay struct {
	Time  string    `xml:"time,attr"`
	Rates []ecbRate `xml:"Cube"`
}

type ecbRate struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// ECBClient implements ports.RateSource against the ECB daily reference-rate
// feed (or anything speaking the same document format). It does not retry;
// retry policy belongs to the refresh scheduler.
type ECBClient struct {
	httpClient *http.Client
	url        string
}

// NewECBClient creates a client for the given feed URL. Every fetch carries
// the given timeout so a stalled feed fails instead of hanging.
func NewECBClient(url string, timeout time.Duration) *ECBClient {
	return &ECBClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// FetchLatest performs one GET against the feed and parses the most recent
// publication day into rate rows, all stamped with that day's date.
func (c *ECBClient) FetchLatest(ctx context.Context) ([]domain.CurrencyRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrSourceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned status %d", apperrors.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrSourceUnavailable, err)
	}

	return parseEnvelope(body)
}

func parseEnvelope(body []byte) ([]domain.CurrencyRate, error) {
	var envelope ecbEnvelope
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedSource, err)
	}

	if len(envelope.Days) == 0 || envelope.Days[0].Time == "" {
		return nil, fmt.Errorf("%w: missing publication date marker", apperrors.ErrMalformedSource)
	}

	// The daily feed carries exactly one day; history feeds list the most
	// recent first. Either way the first day is the latest snapshot.
	day := envelope.Days[0]
	date, err := time.Parse(ecbDateLayout, day.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: unparsable publication date %q", apperrors.ErrMalformedSource, day.Time)
	}

	rates := make([]domain.CurrencyRate, 0, len(day.Rates))
	for _, r := range day.Rates {
		if r.Currency == "" {
			return nil, fmt.Errorf("%w: rate entry without currency attribute", apperrors.ErrMalformedSource)
		}
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("%w: unparsable rate %q for %s", apperrors.ErrMalformedSource, r.Rate, r.Currency)
		}
		rates = append(rates, domain.CurrencyRate{
			CurrencyCode: r.Currency,
			Rate:         rate,
			RateDate:     date,
		})
	}

	return rates, nil
}
