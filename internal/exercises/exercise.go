package exercises

import "time"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Muscle struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	IsFront bool   `json:"isFront"`
}

type Comment struct {
	ID         int       `json:"id"`
	ExerciseID int       `json:"exerciseId"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Exercise struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  int       `json:"category"`
	Language    string    `json:"language"`
	Muscles     []Muscle  `json:"muscles,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryExercises is one block of the catalog overview.
type CategoryExercises struct {
	Category  Category   `json:"category"`
	Exercises []Exercise `json:"exercises"`
}

// ExerciseRequest is the payload for adding and editing exercises.
type ExerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    int    `json:"category"`
	Muscles     []int  `json:"muscles"`
	Language    string `json:"language"`
}
