package postgres

const createUsersSQL = `
CREATE TABLE IF NOT EXISTS users (
  id          BIGSERIAL PRIMARY KEY,
  email       TEXT NOT NULL UNIQUE,
  name        TEXT,
  country     TEXT,
  city        TEXT,
  age         INT,
  preferences JSONB,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

const createBehaviorEventsSQL = `
CREATE TABLE IF NOT EXISTS behavior_events (
  id               BIGSERIAL PRIMARY KEY,
  user_id          BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  event_type       TEXT NOT NULL,
  event_properties JSONB,
  occurred_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

const createBehaviorEventsIndexSQL = `
CREATE INDEX IF NOT EXISTS idx_behavior_events_user_time
ON behavior_events (user_id, occurred_at DESC)
`

const userColumns = `id, email, name, country, city, age, preferences, created_at, updated_at`

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users WHERE id = $1
`

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users WHERE email = $1
`

// Full replace on conflict: omitted optional fields overwrite to NULL.
// (xmax = 0) reports whether the row was freshly inserted.
const upsertUserSQL = `
INSERT INTO users (email, name, country, city, age, preferences)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (email) DO UPDATE SET
  name = EXCLUDED.name,
  country = EXCLUDED.country,
  city = EXCLUDED.city,
  age = EXCLUDED.age,
  preferences = EXCLUDED.preferences,
  updated_at = now()
RETURNING ` + userColumns + `, (xmax = 0) AS inserted
`

const createUserSQL = `
INSERT INTO users (email, name)
VALUES ($1,$2)
RETURNING ` + userColumns + `
`

const deleteUserSQL = `
DELETE FROM users WHERE id = $1
`

const insertBehaviorEventSQL = `
INSERT INTO behavior_events (user_id, event_type, event_properties)
VALUES ($1,$2,$3)
RETURNING id, occurred_at
`

const countByTypeSQL = `
SELECT event_type, COUNT(*) AS cnt
FROM behavior_events
WHERE user_id = $1
GROUP BY event_type
ORDER BY cnt DESC
`
