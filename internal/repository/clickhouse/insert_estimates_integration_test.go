package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

func (s *RepositorySuite) TestInsertEstimates() {
	now := time.Now().UTC().Truncate(time.Second)
	estimates := []model.ReorgEstimate{
		newEstimate(89_900, 90_000, now),
		newEstimate(89_950, 90_000, now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_estimates", model.BTC, model.Testnet4, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertEstimates(s.testCtx, estimates))
	s.Equal(uint64(len(estimates)), s.countRows("reorg_estimates"))
}

func (s *RepositorySuite) TestInsertEstimates_Empty() {
	s.metrics.EXPECT().Observe("insert_estimates", model.Coin(""), model.Network(""), gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertEstimates(s.testCtx, nil))
	s.Equal(uint64(0), s.countRows("reorg_estimates"))
}
