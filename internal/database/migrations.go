package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
var migrationsSQL = map[int]string{
	1: migrationV1FestivalSchema,
	2: migrationV2TraditionalFestivals,
}

// migrationV1FestivalSchema creates the festival table.
//
// Festivals are lunar positions, not dates:
//   - lunar_month is the ordinal month 1-12
//   - lunar_day is 1-30, or 0 for the last day of the month (除夕)
//   - is_leap selects the leap occurrence of lunar_month
//
// The Gregorian date moves every year and is computed at request time.
const migrationV1FestivalSchema = `
-- Migration 001: festivals

CREATE TABLE IF NOT EXISTS festivals (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL UNIQUE,
    lunar_month INTEGER NOT NULL CHECK (lunar_month BETWEEN 1 AND 12),
    lunar_day   INTEGER NOT NULL CHECK (lunar_day BETWEEN 0 AND 30),
    is_leap     INTEGER NOT NULL DEFAULT 0 CHECK (is_leap IN (0, 1)),
    description TEXT,
    created_at  TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_festivals_position
    ON festivals(lunar_month, lunar_day);

CREATE TRIGGER IF NOT EXISTS update_festivals_timestamp
    AFTER UPDATE ON festivals
    FOR EACH ROW
BEGIN
    UPDATE festivals SET updated_at = datetime('now') WHERE id = NEW.id;
END;
`

// migrationV2TraditionalFestivals seeds the traditional festivals.
const migrationV2TraditionalFestivals = `
-- Migration 002: traditional festivals

INSERT OR IGNORE INTO festivals (name, lunar_month, lunar_day, description) VALUES
    ('春节',   1,  1, 'Spring Festival, first day of the lunar year'),
    ('元宵节', 1,  15, 'Lantern Festival'),
    ('龙抬头', 2,  2, 'Dragon Raises its Head'),
    ('端午节', 5,  5, 'Dragon Boat Festival'),
    ('七夕',   7,  7, 'Qixi Festival'),
    ('中元节', 7,  15, 'Ghost Festival'),
    ('中秋节', 8,  15, 'Mid-Autumn Festival'),
    ('重阳节', 9,  9, 'Double Ninth Festival'),
    ('腊八节', 12, 8, 'Laba Festival'),
    ('小年',   12, 23, 'Little New Year'),
    ('除夕',   12, 0, 'New Year''s Eve, last day of the lunar year');
`
