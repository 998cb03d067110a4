package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fcz-stats/internal/domain/fixture"
	"github.com/riskibarqy/fcz-stats/internal/domain/standings"
	"github.com/riskibarqy/fcz-stats/internal/platform/logging"
	"github.com/riskibarqy/fcz-stats/internal/usecase"
)

type Handler struct {
	statsService *usecase.StatsService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(statsService *usecase.StatsService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService: statsService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type standingsQueryRequest struct {
	Limit int `validate:"min=1,max=10"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Dashboard renders the HTML overview page. The dataset behind it
// always materializes (live, snapshot or sample), so visitors never see
// an error page for upstream failures.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Dashboard")
	defer span.End()

	dataset, err := h.statsService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load overview failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	// renderDashboard buffers the whole page before touching w, so on a
	// template error no headers have been flushed yet and the error
	// envelope can still go out.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderDashboard(w, dataset); err != nil {
		h.logger.ErrorContext(ctx, "render dashboard failed", "error", err)
		writeInternalError(ctx, w)
	}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	dataset, err := h.statsService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, datasetToDTO(dataset))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a number", usecase.ErrInvalidInput))
			return
		}
		if err := h.validateRequest(ctx, standingsQueryRequest{Limit: parsed}); err != nil {
			writeError(ctx, w, err)
			return
		}
		limit = parsed
	}

	dataset, err := h.statsService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	table := dataset.Table
	if limit > 0 {
		table = table.Top(limit)
	}

	rows := make([]standingRowDTO, 0, len(table))
	for _, row := range table {
		rows = append(rows, standingRowToDTO(row))
	}
	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) GetNextFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNextFixture")
	defer span.End()

	dataset, err := h.statsService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if !dataset.HasNextMatch {
		writeError(ctx, w, fmt.Errorf("%w: no upcoming fixture scheduled", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(dataset.NextMatch))
}

type standingRowDTO struct {
	Rank           int    `json:"rank"`
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type fixtureDTO struct {
	Date     string `json:"date"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Opponent string `json:"opponent"`
	Venue    string `json:"venue,omitempty"`
	IsHome   bool   `json:"isHome"`
}

type resultDTO struct {
	Date      string `json:"date"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Outcome   string `json:"outcome"`
	IsHome    bool   `json:"isHome"`
}

type statsDTO struct {
	TeamName      string           `json:"teamName"`
	League        string           `json:"league"`
	Season        string           `json:"season"`
	TeamRecord    standingRowDTO   `json:"teamRecord"`
	Standings     []standingRowDTO `json:"standings"`
	NextMatch     *fixtureDTO      `json:"nextMatch,omitempty"`
	RecentMatches []resultDTO      `json:"recentMatches"`
	Source        string           `json:"source"`
	FetchedAt     string           `json:"fetchedAt"`
}

func datasetToDTO(dataset usecase.Dataset) statsDTO {
	rows := make([]standingRowDTO, 0, len(dataset.Table))
	for _, row := range dataset.Table {
		rows = append(rows, standingRowToDTO(row))
	}

	recent := make([]resultDTO, 0, len(dataset.RecentResults))
	for _, item := range dataset.RecentResults {
		recent = append(recent, resultToDTO(item))
	}

	out := statsDTO{
		TeamName:      dataset.TeamName,
		League:        dataset.League,
		Season:        dataset.Season,
		TeamRecord:    standingRowToDTO(dataset.Team),
		Standings:     rows,
		RecentMatches: recent,
		Source:        dataset.Source,
		FetchedAt:     formatTime(dataset.FetchedAt),
	}
	if dataset.HasNextMatch {
		next := fixtureToDTO(dataset.NextMatch)
		out.NextMatch = &next
	}
	return out
}

func standingRowToDTO(row standings.Record) standingRowDTO {
	return standingRowDTO{
		Rank:           row.Rank,
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		Date:     formatTime(v.Date),
		HomeTeam: v.HomeTeam,
		AwayTeam: v.AwayTeam,
		Opponent: v.Opponent,
		Venue:    v.Venue,
		IsHome:   v.IsHome,
	}
}

func resultToDTO(v fixture.Result) resultDTO {
	return resultDTO{
		Date:      formatTime(v.Date),
		HomeTeam:  v.HomeTeam,
		AwayTeam:  v.AwayTeam,
		HomeScore: v.HomeScore,
		AwayScore: v.AwayScore,
		Outcome:   string(v.Outcome),
		IsHome:    v.IsHome,
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
