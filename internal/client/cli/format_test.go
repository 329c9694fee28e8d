package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/escalatorhq/escalator-cli/internal/client/models"
)

func TestFormatMinutos(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "+0h00"},
		{630, "+10h30"},
		{-45, "-0h45"},
		{60, "+1h00"},
		{-601, "-10h01"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMinutos(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2024-06-10", "2024-06-10"}, // Monday
		{"2024-06-12", "2024-06-10"}, // Wednesday
		{"2024-06-16", "2024-06-10"}, // Sunday
	}

	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.day)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, weekStart(d).Format("2006-01-02"), "day=%s", tt.day)
	}
}

func TestFormatEscala(t *testing.T) {
	e := models.Escala{
		Data:         "2024-06-10",
		HoraInicio:   "08:00:00",
		HoraFim:      "17:00:00",
		PausaMinutos: 60,
	}
	assert.Equal(t, "2024-06-10  08:00:00 - 17:00:00  (pausa 60m)", formatEscala(e))

	e.Descanso = true
	assert.Equal(t, "2024-06-10  day off", formatEscala(e))
}
