package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
	"github.com/vporfyris/wallet_rates_app/internal/core/ports"
	portsrepo "github.com/vporfyris/wallet_rates_app/internal/core/ports/repositories"
	portssvc "github.com/vporfyris/wallet_rates_app/internal/core/ports/services"
	"github.com/vporfyris/wallet_rates_app/internal/core/services"
	"github.com/vporfyris/wallet_rates_app/internal/platform/ratecache"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

var _ portsrepo.RateRepositoryFacade = (*MockRateRepository)(nil)

func (m *MockRateRepository) FindLatestRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockRateRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockRateRepository) SaveRates(ctx context.Context, rates []domain.CurrencyRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

var _ ports.RateSource = (*MockRateSource)(nil)

func (m *MockRateSource) FetchLatest(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

// --- Test Suite Setup ---

type RateServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockRateRepository
	mockSource *MockRateSource
	cache      *ratecache.Cache
	service    portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateRepository)
	suite.mockSource = new(MockRateSource)
	suite.cache = ratecache.New(10 * time.Minute)
	suite.service = services.NewRateService(suite.mockRepo, suite.mockSource, suite.cache, "EUR")
}

func sampleRateRows() []domain.CurrencyRate {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	return []domain.CurrencyRate{
		{CurrencyCode: "USD", Rate: decimal.NewFromFloat(1.17), RateDate: date},
		{CurrencyCode: "JPY", Rate: decimal.NewFromFloat(172.43), RateDate: date},
	}
}

// --- GetLatestSnapshot ---

func (suite *RateServiceTestSuite) TestGetLatestSnapshot_LoadsAndCaches() {
	ctx := context.Background()
	rows := sampleRateRows()

	suite.mockRepo.On("FindLatestRates", ctx).Return(rows, nil).Once()

	snapshot, err := suite.service.GetLatestSnapshot(ctx)

	suite.Require().NoError(err)
	suite.Equal(rows[0].RateDate, snapshot.Date)
	suite.Len(snapshot.Rates, 3)

	usd, ok := snapshot.Rate("USD")
	suite.True(ok)
	suite.True(usd.Equal(decimal.NewFromFloat(1.17)))

	// The pivot is injected at rate 1 even though the store never holds it.
	eur, ok := snapshot.Rate("EUR")
	suite.True(ok)
	suite.True(eur.Equal(decimal.NewFromInt(1)))

	// Second read is served from the cache.
	again, err := suite.service.GetLatestSnapshot(ctx)
	suite.Require().NoError(err)
	suite.Equal(snapshot.Date, again.Date)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindLatestRates", 1)
}

func (suite *RateServiceTestSuite) TestGetLatestSnapshot_EmptyStore() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestRates", ctx).Return([]domain.CurrencyRate{}, nil).Once()

	_, err := suite.service.GetLatestSnapshot(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoRatesAvailable)
}

func (suite *RateServiceTestSuite) TestGetLatestSnapshot_RepoError() {
	ctx := context.Background()
	expectedErr := errors.New("db connection lost")

	suite.mockRepo.On("FindLatestRates", ctx).Return(nil, expectedErr).Once()

	_, err := suite.service.GetLatestSnapshot(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- RefreshLatestRates ---

func (suite *RateServiceTestSuite) TestRefreshLatestRates_StoresNewSnapshot() {
	ctx := context.Background()
	rows := sampleRateRows()

	suite.mockSource.On("FetchLatest", ctx).Return(rows, nil).Once()
	suite.mockRepo.On("ExistsForDate", ctx, rows[0].RateDate).Return(false, nil).Once()
	suite.mockRepo.On("SaveRates", ctx, rows).Return(nil).Once()

	updated, err := suite.service.RefreshLatestRates(ctx)

	suite.Require().NoError(err)
	suite.True(updated)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestRefreshLatestRates_DropsCache() {
	ctx := context.Background()
	rows := sampleRateRows()

	// Warm the cache with the pre-refresh snapshot.
	suite.mockRepo.On("FindLatestRates", ctx).Return(rows, nil).Twice()
	_, err := suite.service.GetLatestSnapshot(ctx)
	suite.Require().NoError(err)

	suite.mockSource.On("FetchLatest", ctx).Return(rows, nil).Once()
	suite.mockRepo.On("ExistsForDate", ctx, rows[0].RateDate).Return(false, nil).Once()
	suite.mockRepo.On("SaveRates", ctx, rows).Return(nil).Once()

	_, err = suite.service.RefreshLatestRates(ctx)
	suite.Require().NoError(err)

	// The next read misses the cache and hits the store again.
	_, err = suite.service.GetLatestSnapshot(ctx)
	suite.Require().NoError(err)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindLatestRates", 2)
}

func (suite *RateServiceTestSuite) TestRefreshLatestRates_DateAlreadyStored() {
	ctx := context.Background()
	rows := sampleRateRows()

	suite.mockSource.On("FetchLatest", ctx).Return(rows, nil).Once()
	suite.mockRepo.On("ExistsForDate", ctx, rows[0].RateDate).Return(true, nil).Once()

	updated, err := suite.service.RefreshLatestRates(ctx)

	suite.Require().NoError(err)
	suite.False(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestRefreshLatestRates_SourceUnavailable() {
	ctx := context.Background()

	suite.mockSource.On("FetchLatest", ctx).Return(nil, apperrors.ErrSourceUnavailable).Once()

	updated, err := suite.service.RefreshLatestRates(ctx)

	suite.Require().Error(err)
	suite.False(updated)
	suite.ErrorIs(err, apperrors.ErrSourceUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsForDate", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestRefreshLatestRates_EmptyFeed() {
	ctx := context.Background()

	suite.mockSource.On("FetchLatest", ctx).Return([]domain.CurrencyRate{}, nil).Once()

	updated, err := suite.service.RefreshLatestRates(ctx)

	suite.Require().NoError(err)
	suite.False(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsForDate", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestRefreshLatestRates_SaveError() {
	ctx := context.Background()
	rows := sampleRateRows()
	expectedErr := errors.New("db connection lost")

	suite.mockSource.On("FetchLatest", ctx).Return(rows, nil).Once()
	suite.mockRepo.On("ExistsForDate", ctx, rows[0].RateDate).Return(false, nil).Once()
	suite.mockRepo.On("SaveRates", ctx, rows).Return(expectedErr).Once()

	updated, err := suite.service.RefreshLatestRates(ctx)

	suite.Require().Error(err)
	suite.False(updated)
	suite.ErrorIs(err, expectedErr)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
