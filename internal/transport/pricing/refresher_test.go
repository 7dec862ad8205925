package pricing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/logger"
	"github.com/fsdevblog/groph-market/internal/transport/pricing/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type RefresherTestSuite struct {
	suite.Suite
	mockServicer *mocks.MockServicer
}

func TestRefresherSuite(t *testing.T) {
	suite.Run(t, new(RefresherTestSuite))
}

func (s *RefresherTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockServicer = mocks.NewMockServicer(mockCtrl)
}

func (s *RefresherTestSuite) TestRunRefreshesPeriodically() {
	s.mockServicer.EXPECT().
		RefreshMinPrices(gomock.Any()).
		Return(nil, nil).
		MinTimes(1)

	refresher := NewRefresher(s.mockServicer, logger.New(os.Stdout)).
		SetInterval(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(s.T().Context(), 200*time.Millisecond)
	defer cancel()

	refresher.Run(ctx)
}

func (s *RefresherTestSuite) TestRunStopsOnCancel() {
	s.mockServicer.EXPECT().RefreshMinPrices(gomock.Any()).Times(0)

	refresher := NewRefresher(s.mockServicer, logger.New(os.Stdout)).
		SetInterval(time.Hour)

	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("refresher did not stop on context cancel")
	}
}
