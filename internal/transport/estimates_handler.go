// Package transport exposes the estimate history over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

const (
	defaultEstimatesLimit = 20
	maxEstimatesLimit     = 1000
)

type (
	// EstimatesReader serves recent estimates from storage.
	EstimatesReader interface {
		LatestEstimates(ctx context.Context, coin model.Coin, network model.Network, limit uint64) ([]model.ReorgEstimate, error)
	}
)

// EstimatesHandler serves GET /v1/estimates.
type EstimatesHandler struct {
	reader  EstimatesReader
	coin    model.Coin
	network model.Network
	logger  *zap.Logger
}

// NewEstimatesHandler constructs the handler for one coin/network pair.
func NewEstimatesHandler(reader EstimatesReader, coin model.Coin, network model.Network, logger *zap.Logger) *EstimatesHandler {
	return &EstimatesHandler{
		reader:  reader,
		coin:    coin,
		network: network,
		logger:  logger.Named("estimatesHandler"),
	}
}

type estimateResponse struct {
	Coin                  string    `json:"coin"`
	Network               string    `json:"network"`
	ForkHeight            uint64    `json:"fork_height"`
	TipHeight             uint64    `json:"tip_height"`
	BlocksToReorg         uint64    `json:"blocks_to_reorg"`
	TotalWork             float64   `json:"total_work"`
	CurrentDifficulty     float64   `json:"current_difficulty"`
	BlocksNeeded          uint64    `json:"blocks_needed"`
	Hashrate              float64   `json:"hashrate"`
	DurationSeconds       float64   `json:"duration_seconds"`
	SingleBlockSufficient bool      `json:"single_block_sufficient"`
	CreatedAt             time.Time `json:"created_at"`
}

func (h *EstimatesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := uint64(defaultEstimatesLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 || parsed > maxEstimatesLimit {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	estimates, err := h.reader.LatestEstimates(r.Context(), h.coin, h.network, limit)
	if err != nil {
		h.logger.Error("read latest estimates", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]estimateResponse, 0, len(estimates))
	for _, e := range estimates {
		resp = append(resp, estimateResponse{
			Coin:                  string(e.Coin),
			Network:               string(e.Network),
			ForkHeight:            e.ForkHeight,
			TipHeight:             e.TipHeight,
			BlocksToReorg:         e.BlocksToReorg,
			TotalWork:             e.TotalWork,
			CurrentDifficulty:     e.CurrentDifficulty,
			BlocksNeeded:          e.BlocksNeeded,
			Hashrate:              e.Hashrate,
			DurationSeconds:       e.DurationSeconds,
			SingleBlockSufficient: e.SingleBlockSufficient,
			CreatedAt:             e.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode estimates response", zap.Error(err))
	}
}
