package ratesource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vporfyris/wallet_rates_app/internal/adapters/ratesource"
	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
)

const validFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<gesmes:Sender>
		<gesmes:name>European Central Bank</gesmes:name>
	</gesmes:Sender>
	<Cube>
		<Cube time="2024-03-01">
			<Cube currency="USD" rate="1.0811"/>
			<Cube currency="JPY" rate="162.23"/>
			<Cube currency="GBP" rate="0.85515"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchLatest_ParsesFeed(t *testing.T) {
	server := feedServer(t, http.StatusOK, validFeed)
	client := ratesource.NewECBClient(server.URL, time.Second)

	rates, err := client.FetchLatest(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 3)

	wantDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, r := range rates {
		assert.True(t, r.RateDate.Equal(wantDate), "all rows must share the publication date")
	}
	assert.Equal(t, "USD", rates[0].CurrencyCode)
	assert.True(t, rates[0].Rate.Equal(decimal.RequireFromString("1.0811")))
	assert.Equal(t, "JPY", rates[1].CurrencyCode)
	assert.Equal(t, "GBP", rates[2].CurrencyCode)
}

func TestFetchLatest_ServerError(t *testing.T) {
	server := feedServer(t, http.StatusInternalServerError, "boom")
	client := ratesource.NewECBClient(server.URL, time.Second)

	_, err := client.FetchLatest(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestFetchLatest_Unreachable(t *testing.T) {
	server := feedServer(t, http.StatusOK, validFeed)
	url := server.URL
	server.Close()

	client := ratesource.NewECBClient(url, time.Second)
	_, err := client.FetchLatest(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestFetchLatest_GarbageBody(t *testing.T) {
	server := feedServer(t, http.StatusOK, "this is not xml <")
	client := ratesource.NewECBClient(server.URL, time.Second)

	_, err := client.FetchLatest(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrMalformedSource)
}

func TestFetchLatest_MissingDateMarker(t *testing.T) {
	noDate := `<?xml version="1.0"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube></Cube>
</gesmes:Envelope>`
	server := feedServer(t, http.StatusOK, noDate)
	client := ratesource.NewECBClient(server.URL, time.Second)

	_, err := client.FetchLatest(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrMalformedSource)
}

func TestFetchLatest_UnparsableRate(t *testing.T) {
	badRate := `<?xml version="1.0"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube>
		<Cube time="2024-03-01">
			<Cube currency="USD" rate="not-a-number"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`
	server := feedServer(t, http.StatusOK, badRate)
	client := ratesource.NewECBClient(server.URL, time.Second)

	_, err := client.FetchLatest(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedSource)
	assert.Contains(t, err.Error(), "USD")
}

func TestFetchLatest_EmptyDayYieldsNoRows(t *testing.T) {
	emptyDay := `<?xml version="1.0"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube>
		<Cube time="2024-03-01"></Cube>
	</Cube>
</gesmes:Envelope>`
	server := feedServer(t, http.StatusOK, emptyDay)
	client := ratesource.NewECBClient(server.URL, time.Second)

	rates, err := client.FetchLatest(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rates)
}
