package domain

import "testing"

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		released string
		want     int
	}{
		{"2011-04-18", 2011},
		{"1998-11-19", 1998},
		{"", 0},
		{"not-a-date", 0},
	}

	for _, tt := range tests {
		g := Game{Released: tt.released}
		if got := g.ReleaseYear(); got != tt.want {
			t.Errorf("ReleaseYear(%q) = %d, want %d", tt.released, got, tt.want)
		}
	}
}

func TestFormattedReleased(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want string
	}{
		{"normal date", Game{Released: "2011-04-18"}, "April 18, 2011"},
		{"tba flag wins", Game{Released: "2027-01-01", TBA: true}, "TBA"},
		{"missing date", Game{}, "TBA"},
		{"unparseable date passes through", Game{Released: "soon"}, "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.game.FormattedReleased(); got != tt.want {
				t.Errorf("FormattedReleased = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormattedPlaytime(t *testing.T) {
	if got := (Game{Playtime: 11}).FormattedPlaytime(); got != "11h" {
		t.Errorf("FormattedPlaytime = %q, want 11h", got)
	}
	if got := (Game{}).FormattedPlaytime(); got != "" {
		t.Errorf("FormattedPlaytime = %q for unknown playtime, want empty", got)
	}
}

func TestHasMetacritic(t *testing.T) {
	if (Game{}).HasMetacritic() {
		t.Error("unscored title reports a critic score")
	}
	if !(Game{Metacritic: 95}).HasMetacritic() {
		t.Error("scored title reports no critic score")
	}
}
