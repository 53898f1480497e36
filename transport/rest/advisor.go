package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/triangles-backend/internal/apperror"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/service"
)

type gameState struct {
	Dots               [][]entity.Dot              `json:"dots"`
	Lines              map[string]entity.LineState `json:"lines"`
	Triangles          []entity.TriangleState      `json:"triangles"`
	Player             entity.Mark                 `json:"player"`
	RequiredLineLength int                         `json:"requiredLineLength"`
	ScoreAgain         bool                        `json:"isScoreAndGoAgain"`
	AllowShorterLines  bool                        `json:"allowShorterLines"`
}

type getMoveRequest struct {
	GameState gameState               `json:"gameState"`
	AIType    string                  `json:"aiType"`
	Weights   *entity.WeightOverrides `json:"weights,omitempty"`
}

type getMoveResponse struct {
	BestMove *entity.Move `json:"bestMove"`
}

// getMove - stateless advice for a board the client keeps itself. No legal move yields bestMove: null.
func (that *Server) getMove(w http.ResponseWriter, r *http.Request) {
	var req getMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err))
		return
	}

	move, err := that.advisor.SuggestMove(r.Context(), service.AdviceRequest{
		Dots:               req.GameState.Dots,
		Lines:              req.GameState.Lines,
		Triangles:          req.GameState.Triangles,
		Player:             req.GameState.Player,
		RequiredLineLength: req.GameState.RequiredLineLength,
		AllowShorterLines:  req.GameState.AllowShorterLines,
		ScoreAgain:         req.GameState.ScoreAgain,
		Strategy:           req.AIType,
		Weights:            req.Weights,
	})
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, getMoveResponse{BestMove: move})
}
