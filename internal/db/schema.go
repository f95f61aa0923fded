package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates all the tables, it is safe to run on an already initialized database.
const Schema = `
CREATE TABLE IF NOT EXISTS gym
(
    id         SERIAL PRIMARY KEY,
    name       VARCHAR NOT NULL,
    phone      VARCHAR NOT NULL DEFAULT '',
    email      VARCHAR NOT NULL DEFAULT '',
    owner      VARCHAR NOT NULL DEFAULT '',
    zip_code   VARCHAR NOT NULL DEFAULT '',
    city       VARCHAR NOT NULL DEFAULT '',
    street     VARCHAR NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users
(
    id            SERIAL PRIMARY KEY,
    username      VARCHAR NOT NULL UNIQUE,
    email         VARCHAR NOT NULL DEFAULT '',
    password_hash VARCHAR NOT NULL,
    gym_id        INTEGER REFERENCES gym (id) ON DELETE SET NULL,
    permissions   TEXT[]  NOT NULL DEFAULT '{}',
    language      VARCHAR(5) NOT NULL DEFAULT 'en',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_users_gym_id ON users (gym_id);

-- NUTRITION
CREATE TABLE IF NOT EXISTS ingredient
(
    id                  SERIAL PRIMARY KEY,
    name                VARCHAR NOT NULL,
    language            VARCHAR(5) NOT NULL DEFAULT 'en',
    status              VARCHAR NOT NULL DEFAULT 'pending',
    code                VARCHAR NOT NULL DEFAULT '',
    creation_date       TIMESTAMPTZ NOT NULL DEFAULT now(),
    update_date         TIMESTAMPTZ NOT NULL DEFAULT now(),
    energy              DOUBLE PRECISION NOT NULL DEFAULT 0,
    protein             DOUBLE PRECISION NOT NULL DEFAULT 0,
    carbohydrates       DOUBLE PRECISION NOT NULL DEFAULT 0,
    carbohydrates_sugar DOUBLE PRECISION NOT NULL DEFAULT 0,
    fat                 DOUBLE PRECISION NOT NULL DEFAULT 0,
    fat_saturated       DOUBLE PRECISION NOT NULL DEFAULT 0,
    fibres              DOUBLE PRECISION NOT NULL DEFAULT 0,
    sodium              DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS ix_ingredient_language_status ON ingredient (language, status);
-- one ingredient per imported product code
CREATE UNIQUE INDEX IF NOT EXISTS ux_ingredient_code ON ingredient (code) WHERE code <> '';

CREATE TABLE IF NOT EXISTS weight_unit
(
    id       SERIAL PRIMARY KEY,
    name     VARCHAR NOT NULL,
    language VARCHAR(5) NOT NULL DEFAULT 'en',
    UNIQUE (name, language)
);

CREATE TABLE IF NOT EXISTS ingredient_weight_unit
(
    id            SERIAL PRIMARY KEY,
    ingredient_id INTEGER NOT NULL REFERENCES ingredient (id) ON DELETE CASCADE,
    unit_id       INTEGER NOT NULL REFERENCES weight_unit (id) ON DELETE CASCADE,
    amount        DOUBLE PRECISION NOT NULL DEFAULT 1,
    gram          DOUBLE PRECISION NOT NULL CHECK (gram > 0),
    UNIQUE (ingredient_id, unit_id)
);

CREATE TABLE IF NOT EXISTS nutrition_plan
(
    id                        SERIAL PRIMARY KEY,
    user_id                   INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    description               VARCHAR NOT NULL DEFAULT '',
    language                  VARCHAR(5) NOT NULL DEFAULT 'en',
    creation_date             TIMESTAMPTZ NOT NULL DEFAULT now(),
    has_goal_calories         BOOLEAN NOT NULL DEFAULT FALSE,
    goal_energy               DOUBLE PRECISION,
    goal_protein              DOUBLE PRECISION,
    goal_carbohydrates        DOUBLE PRECISION,
    goal_carbohydrates_sugar  DOUBLE PRECISION,
    goal_fat                  DOUBLE PRECISION,
    goal_fat_saturated        DOUBLE PRECISION,
    goal_fibres               DOUBLE PRECISION,
    goal_sodium               DOUBLE PRECISION
);
CREATE INDEX IF NOT EXISTS ix_nutrition_plan_user_id ON nutrition_plan (user_id);

CREATE TABLE IF NOT EXISTS meal
(
    id            SERIAL PRIMARY KEY,
    plan_id       INTEGER NOT NULL REFERENCES nutrition_plan (id) ON DELETE CASCADE,
    "order"       INTEGER NOT NULL DEFAULT 1,
    time_of_day   VARCHAR(5),
    in_daily_plan BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS ix_meal_plan_id ON meal (plan_id);

CREATE TABLE IF NOT EXISTS meal_item
(
    id             SERIAL PRIMARY KEY,
    meal_id        INTEGER NOT NULL REFERENCES meal (id) ON DELETE CASCADE,
    ingredient_id  INTEGER NOT NULL REFERENCES ingredient (id),
    weight_unit_id INTEGER REFERENCES weight_unit (id) ON DELETE RESTRICT,
    amount         DOUBLE PRECISION NOT NULL CHECK (amount >= 0),
    "order"        INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_meal_item_meal_id ON meal_item (meal_id);

-- EXERCISES
CREATE TABLE IF NOT EXISTS exercise_category
(
    id   SERIAL PRIMARY KEY,
    name VARCHAR NOT NULL
);

CREATE TABLE IF NOT EXISTS muscle
(
    id       SERIAL PRIMARY KEY,
    name     VARCHAR NOT NULL,
    is_front BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS exercise
(
    id          SERIAL PRIMARY KEY,
    name        VARCHAR NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category_id INTEGER NOT NULL REFERENCES exercise_category (id) ON DELETE CASCADE,
    language    VARCHAR(5) NOT NULL DEFAULT 'en',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercise_muscle
(
    exercise_id INTEGER NOT NULL REFERENCES exercise (id) ON DELETE CASCADE,
    muscle_id   INTEGER NOT NULL REFERENCES muscle (id) ON DELETE CASCADE,
    PRIMARY KEY (exercise_id, muscle_id)
);

CREATE TABLE IF NOT EXISTS exercise_comment
(
    id          SERIAL PRIMARY KEY,
    exercise_id INTEGER NOT NULL REFERENCES exercise (id) ON DELETE CASCADE,
    comment     TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- WORKOUTS
CREATE TABLE IF NOT EXISTS workout
(
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    comment    VARCHAR NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_user_id ON workout (user_id);

CREATE TABLE IF NOT EXISTS workout_day
(
    id           SERIAL PRIMARY KEY,
    workout_id   INTEGER NOT NULL REFERENCES workout (id) ON DELETE CASCADE,
    description  VARCHAR NOT NULL,
    days_of_week INTEGER[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS workout_set
(
    id         SERIAL PRIMARY KEY,
    day_id     INTEGER NOT NULL REFERENCES workout_day (id) ON DELETE CASCADE,
    "order"    INTEGER NOT NULL DEFAULT 1,
    sets_count INTEGER NOT NULL CHECK (sets_count BETWEEN 1 AND 10)
);

CREATE TABLE IF NOT EXISTS workout_setting
(
    id          SERIAL PRIMARY KEY,
    set_id      INTEGER NOT NULL REFERENCES workout_set (id) ON DELETE CASCADE,
    exercise_id INTEGER NOT NULL REFERENCES exercise (id) ON DELETE CASCADE,
    reps        INTEGER NOT NULL,
    "order"     INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS workout_log
(
    id          SERIAL PRIMARY KEY,
    user_id     INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    exercise_id INTEGER NOT NULL REFERENCES exercise (id) ON DELETE CASCADE,
    workout_id  INTEGER REFERENCES workout (id) ON DELETE SET NULL,
    reps        INTEGER NOT NULL,
    weight      DOUBLE PRECISION NOT NULL,
    date        DATE NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_workout_log_user_exercise ON workout_log (user_id, exercise_id);
`

// ApplySchema creates the missing tables and indexes.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
