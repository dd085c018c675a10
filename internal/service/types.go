package service

import (
	"context"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainSource is the live chain view consumed by the services.
	ChainSource interface {
		BlockDifficulty(ctx context.Context, height uint64) (float64, error)
		LatestHeight(ctx context.Context) (uint64, error)
		NetworkState(ctx context.Context) (model.NetworkState, error)
	}

	// EstimateRepository persists produced estimates.
	EstimateRepository interface {
		InsertEstimates(ctx context.Context, estimates []model.ReorgEstimate) error
	}

	// EstimateRecorder accepts estimates for asynchronous persistence.
	EstimateRecorder interface {
		Start(ctx context.Context)
		Stop()
		Record(ctx context.Context, estimate model.ReorgEstimate) error
	}
)
