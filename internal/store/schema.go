package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name                     TEXT PRIMARY KEY,
    horizon_months           INTEGER NOT NULL,
    initial_growth_rate      REAL NOT NULL,
    final_growth_rate        REAL NOT NULL,
    monthly_price            TEXT NOT NULL,
    annual_price             TEXT NOT NULL,
    subscription_rate        REAL NOT NULL,
    rpm                      TEXT NOT NULL,
    personnel_cost_low       TEXT NOT NULL,
    personnel_cost_high      TEXT NOT NULL,
    operational_cost         TEXT NOT NULL,
    initial_capital          TEXT NOT NULL,
    break_even_month         INTEGER,
    final_cumulative_surplus TEXT NOT NULL,
    exported_at              TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scenario_months (
    scenario             TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
    month                INTEGER NOT NULL,
    growth_rate          REAL NOT NULL,
    mau                  REAL NOT NULL,
    subscription_revenue TEXT NOT NULL,
    ad_revenue           TEXT NOT NULL,
    total_revenue        TEXT NOT NULL,
    personnel_cost       TEXT NOT NULL,
    cash_flow            TEXT NOT NULL,
    cumulative_surplus   TEXT NOT NULL,
    cash_balance         TEXT NOT NULL,
    PRIMARY KEY (scenario, month)
);

CREATE INDEX IF NOT EXISTS idx_scenario_months_scenario ON scenario_months(scenario);
`
