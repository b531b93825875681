package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster_Default(t *testing.T) {
	roster, err := NewRoster(DefaultEntries())
	require.NoError(t, err)

	assert.Equal(t, 9, roster.Len())
	assert.Equal(t, []string{
		"Diandra", "Miftah", "Dewan", "Arman", "Kusnandar", "Gunawan", "Nury", "Anto", "Dewi",
	}, roster.Names())
}

func TestNewRoster_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{"duplicate id", []Entry{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}, ErrDuplicateEntry},
		{"duplicate name", []Entry{{ID: 1, Name: "A"}, {ID: 2, Name: "A"}}, ErrDuplicateEntry},
		{"zero id", []Entry{{ID: 0, Name: "A"}}, ErrInvalidEntry},
		{"blank name", []Entry{{ID: 1, Name: "  "}}, ErrInvalidEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoster(tt.entries)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRoster_Resolve(t *testing.T) {
	roster, err := NewRoster(DefaultEntries())
	require.NoError(t, err)

	e, err := roster.Resolve("Kusnandar")
	require.NoError(t, err)
	assert.Equal(t, Entry{ID: 5, Name: "Kusnandar"}, e)

	_, err = roster.Resolve("Nobody")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
	assert.Contains(t, err.Error(), "Nobody")
}

func TestRoster_ByID(t *testing.T) {
	roster, err := NewRoster(DefaultEntries())
	require.NoError(t, err)

	e, err := roster.ByID(8)
	require.NoError(t, err)
	assert.Equal(t, "Anto", e.Name)

	_, err = roster.ByID(42)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestRoster_EntriesIsACopy(t *testing.T) {
	roster, err := NewRoster(DefaultEntries())
	require.NoError(t, err)

	entries := roster.Entries()
	entries[0].Name = "Mutated"

	e, err := roster.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Diandra", e.Name)
}

func TestRates_Default(t *testing.T) {
	rates := DefaultRates()
	require.NoError(t, rates.Validate())

	assert.Equal(t, 0.25, rates.LeadGenPool)
	assert.Equal(t, 0.25, rates.Telemarketing)
	assert.Equal(t, 0.50, rates.Conversion)
	assert.Equal(t, 0.75, rates.Combined)
	assert.Equal(t, rates.Combined, rates.Telemarketing+rates.Conversion)
}

func TestRates_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RateTable)
	}{
		{"combined mismatch", func(r *RateTable) { r.Combined = 0.7 }},
		{"does not cover price", func(r *RateTable) { r.LeadGenPool = 0.2 }},
		{"negative rate", func(r *RateTable) { r.LeadGenPool = -0.25; r.Conversion = 1.0; r.Combined = 1.25 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := DefaultRates()
			tt.mutate(&rates)
			assert.ErrorIs(t, rates.Validate(), ErrInvalidRates)
		})
	}
}
