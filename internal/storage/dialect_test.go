package storage

import "testing"

func TestDialectFor(t *testing.T) {
	tests := []struct {
		dsn      string
		expected string
	}{
		{"~/.handtris/scores.db", "sqlite"},
		{"/tmp/scores.db", "sqlite"},
		{"postgres://user:pw@localhost:5432/handtris?sslmode=disable", "postgres"},
		{"postgresql://localhost/handtris", "postgres"},
	}

	for _, tt := range tests {
		if got := dialectFor(tt.dsn).name; got != tt.expected {
			t.Errorf("dialectFor(%q) = %s, expected %s", tt.dsn, got, tt.expected)
		}
	}
}

func TestRebind(t *testing.T) {
	query := "SELECT id FROM scores WHERE game_id = ? AND score > ? LIMIT ?"

	if got := sqliteDialect.rebind(query); got != query {
		t.Errorf("sqlite rebind changed the query: %s", got)
	}

	expected := "SELECT id FROM scores WHERE game_id = $1 AND score > $2 LIMIT $3"
	if got := postgresDialect.rebind(query); got != expected {
		t.Errorf("postgres rebind = %s, expected %s", got, expected)
	}
}

func TestParseTime(t *testing.T) {
	inputs := []any{
		"2026-03-01 12:30:00",
		"2026-03-01 12:30:00+00:00",
		[]byte("2026-03-01T12:30:00Z"),
	}
	for _, in := range inputs {
		got := parseTime(in)
		if got.Year() != 2026 || got.Month() != 3 || got.Hour() != 12 || got.Minute() != 30 {
			t.Errorf("parseTime(%v) = %v", in, got)
		}
	}
	if !parseTime(42).IsZero() {
		t.Error("unsupported types should give the zero time")
	}
}
