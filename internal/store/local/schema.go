package local

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
    identifier       TEXT PRIMARY KEY,
    name             TEXT NOT NULL,
    height           REAL,
    calorie_goal     REAL,
    protein_goal     TEXT,
    carb_goal        TEXT,
    fat_goal         TEXT
);

CREATE TABLE IF NOT EXISTS weights (
    identifier       TEXT NOT NULL,
    weight           REAL NOT NULL,
    created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meals (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    identifier       TEXT NOT NULL,
    time_label       TEXT,
    title            TEXT,
    calories         REAL,
    protein          TEXT,
    carbs            TEXT,
    fat              TEXT,
    created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workouts (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    identifier       TEXT NOT NULL,
    calories_burned  REAL,
    workout_type     TEXT,
    duration         TEXT,
    created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS hydration (
    identifier       TEXT NOT NULL,
    amount           TEXT,
    created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sleep (
    identifier       TEXT NOT NULL,
    duration         TEXT,
    created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS steps (
    identifier       TEXT NOT NULL,
    count            INTEGER,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_weights_user_time ON weights(identifier, created_at);
CREATE INDEX IF NOT EXISTS idx_meals_user_time ON meals(identifier, created_at);
CREATE INDEX IF NOT EXISTS idx_workouts_user_time ON workouts(identifier, created_at);
CREATE INDEX IF NOT EXISTS idx_hydration_user_time ON hydration(identifier, created_at);
CREATE INDEX IF NOT EXISTS idx_sleep_user_time ON sleep(identifier, created_at);
CREATE INDEX IF NOT EXISTS idx_steps_user_time ON steps(identifier, created_at);
`
