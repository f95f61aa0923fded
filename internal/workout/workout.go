package workout

import "time"

const (
	MaxSetsCount = 10
	MaxReps      = 100
)

type Workout struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Days      []Day     `json:"days"`
}

// Day is a training day of a workout, repeated on the given days of week (1 monday .. 7 sunday).
type Day struct {
	ID          int    `json:"id"`
	WorkoutID   int    `json:"workoutId"`
	Description string `json:"description"`
	DaysOfWeek  []int  `json:"daysOfWeek"`
	Sets        []Set  `json:"sets"`
}

type Set struct {
	ID        int       `json:"id"`
	DayID     int       `json:"dayId"`
	Order     int       `json:"order"`
	SetsCount int       `json:"setsCount"`
	Settings  []Setting `json:"settings"`
}

// Setting is one exercise of a set with its repetitions.
type Setting struct {
	ID         int `json:"id"`
	SetID      int `json:"setId"`
	ExerciseID int `json:"exerciseId"`
	Reps       int `json:"reps"`
	Order      int `json:"order"`
}

// LogEntry is one performed set of an exercise.
type LogEntry struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	ExerciseID int       `json:"exerciseId"`
	WorkoutID  *int      `json:"workoutId"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	Date       time.Time `json:"date"`
}
