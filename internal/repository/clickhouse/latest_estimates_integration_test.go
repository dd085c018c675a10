package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

func (s *RepositorySuite) TestLatestEstimates() {
	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	estimates := []model.ReorgEstimate{
		newEstimate(100, 200, base),
		newEstimate(150, 200, base.Add(time.Minute)),
		newEstimate(190, 200, base.Add(2*time.Minute)),
	}

	s.metrics.EXPECT().Observe("insert_estimates", model.BTC, model.Testnet4, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("latest_estimates", model.BTC, model.Testnet4, gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertEstimates(s.testCtx, estimates))

	got, err := s.repo.LatestEstimates(s.testCtx, model.BTC, model.Testnet4, 2)
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	// Newest first.
	s.Equal(uint64(190), got[0].ForkHeight)
	s.Equal(uint64(150), got[1].ForkHeight)
	s.Equal(model.BTC, got[0].Coin)
	s.Equal(model.Testnet4, got[0].Network)
	s.Equal(uint64(100), got[0].BlocksNeeded)
	s.Equal(150e12, got[0].Hashrate)

	// A network with no rows yields an empty result.
	empty, err := s.repo.LatestEstimates(s.testCtx, model.BTC, model.Mainnet, 10)
	s.Require().NoError(err)
	s.Empty(empty)
}
