package workout

import (
	"context"
	"math"
	"time"

	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const dayLayout = "2006-01-02"

// ExerciseHistory holds, for each day, the average weight and reps per set of one exercise.
type ExerciseHistory struct {
	ExerciseID int                 `json:"exerciseId"`
	Stats      map[string]DayStats `json:"stats"`
}

type DayStats struct {
	AvgWeight float64 `json:"avgWeight"`
	AvgReps   float64 `json:"avgReps"`
	Sets      int     `json:"sets"`
}

type logLister interface {
	LogsByExercise(ctx context.Context, userID, exerciseID int) ([]LogEntry, error)
}

type Analyzer struct {
	logs logLister
}

func NewAnalyzer(logs logLister) *Analyzer {
	return &Analyzer{
		logs: logs,
	}
}

func (a *Analyzer) ExerciseHistory(ctx context.Context, userID, exerciseID int) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workout.exerciseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	entries, err := a.logs.LogsByExercise(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}

	history := &ExerciseHistory{
		ExerciseID: exerciseID,
		Stats:      make(map[string]DayStats),
	}

	day2entries := make(map[string][]LogEntry)
	for _, e := range entries {
		day := e.Date.UTC().Truncate(24 * time.Hour).Format(dayLayout)
		day2entries[day] = append(day2entries[day], e)
	}

	for day, dayEntries := range day2entries {
		var weight, reps float64
		for _, e := range dayEntries {
			weight += e.Weight
			reps += float64(e.Reps)
		}
		n := float64(len(dayEntries))
		history.Stats[day] = DayStats{
			AvgWeight: round2(weight / n),
			AvgReps:   round2(reps / n),
			Sets:      len(dayEntries),
		}
	}

	return history, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
