package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id          TEXT PRIMARY KEY,
    created_at      TEXT NOT NULL,
    plans_file      TEXT NOT NULL,
    medical_bills   REAL NOT NULL,
    months          INTEGER NOT NULL,
    visits          INTEGER NOT NULL,
    tax_bracket     REAL NOT NULL,
    cheapest_plan   TEXT NOT NULL,
    cheapest_cost   REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS run_plans (
    run_id          TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    plan_name       TEXT NOT NULL,
    total_cost      REAL NOT NULL,
    PRIMARY KEY (run_id, plan_name)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
