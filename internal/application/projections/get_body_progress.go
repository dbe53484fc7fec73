package projections

import (
	"context"

	"gymdash/internal/domain/measurement"
)

// GetBodyProgressQuery carries query parameters for the body tracker.
type GetBodyProgressQuery struct {
	MemberID string
	Recent   int // number of recent entries to return; defaults to 10
}

// GetBodyProgressResult carries the body tracker screen data.
type GetBodyProgressResult struct {
	Recent  []measurement.Measurement // newest first, for the history table
	Series  []measurement.Measurement // oldest first, for the charts
	Latest  *measurement.Measurement
	Delta   measurement.Measurement // latest minus first entry
	Entries int
}

// GetBodyProgressDeps holds dependencies for GetBodyProgress.
type GetBodyProgressDeps struct {
	MeasurementStore MeasurementStore
}

// QueryGetBodyProgress returns a member's measurement history with the
// overall change since their first entry.
// PRE: MemberID is non-empty
// POST: Delta is zero-valued when fewer than two entries exist
func QueryGetBodyProgress(ctx context.Context, query GetBodyProgressQuery, deps GetBodyProgressDeps) (GetBodyProgressResult, error) {
	recent := query.Recent
	if recent < 1 {
		recent = 10
	}

	series, err := deps.MeasurementStore.Series(ctx, query.MemberID)
	if err != nil {
		return GetBodyProgressResult{}, err
	}

	entries, err := deps.MeasurementStore.ListByMember(ctx, query.MemberID, recent)
	if err != nil {
		return GetBodyProgressResult{}, err
	}

	result := GetBodyProgressResult{
		Recent:  entries,
		Series:  series,
		Entries: len(series),
	}
	if len(series) > 0 {
		latest := series[len(series)-1]
		result.Latest = &latest
		if len(series) > 1 {
			result.Delta = latest.Delta(series[0])
		}
	}

	return result, nil
}
