package commission

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAllocator(t *testing.T) *Allocator {
	t.Helper()
	roster, err := NewRoster(DefaultEntries())
	require.NoError(t, err)
	a, err := NewAllocator(roster, DefaultRates())
	require.NoError(t, err)
	return a
}

func TestAllocate_SeparateRoles(t *testing.T) {
	a := newTestAllocator(t)

	result, err := a.Allocate(100_000_000, []string{"Diandra"}, "Miftah", "Dewan")
	require.NoError(t, err)

	expected := []Allocation{
		{SalesID: 1, Name: "Diandra", Role: RoleLeadGenerator, Percentage: 25, Amount: 25_000_000},
		{SalesID: 2, Name: "Miftah", Role: RoleTelemarketing, Percentage: 25, Amount: 25_000_000},
		{SalesID: 3, Name: "Dewan", Role: RoleConversion, Percentage: 50, Amount: 50_000_000},
	}
	assert.Equal(t, expected, result.Allocations)
	assert.False(t, result.Combined)
	assert.Equal(t, int64(100_000_000), result.Total())
}

func TestAllocate_CombinedRole(t *testing.T) {
	a := newTestAllocator(t)

	result, err := a.Allocate(100_000_000, []string{"Diandra", "Miftah"}, "Dewan", "Dewan")
	require.NoError(t, err)

	expected := []Allocation{
		{SalesID: 1, Name: "Diandra", Role: RoleLeadGenerator, Percentage: 12.5, Amount: 12_500_000},
		{SalesID: 2, Name: "Miftah", Role: RoleLeadGenerator, Percentage: 12.5, Amount: 12_500_000},
		{SalesID: 3, Name: "Dewan", Role: RoleCombined, Percentage: 75, Amount: 75_000_000},
	}
	assert.Equal(t, expected, result.Allocations)
	assert.True(t, result.Combined)
	assert.Equal(t, int64(100_000_000), result.Total())
}

func TestAllocate_RoundingDrift(t *testing.T) {
	// pool = 2.5, each share = round(0.833) = 1, telemarketing round(2.5) = 3
	a := newTestAllocator(t)

	result, err := a.Allocate(10, []string{"Diandra", "Miftah", "Dewan"}, "Arman", "Kusnandar")
	require.NoError(t, err)
	require.Len(t, result.Allocations, 5)

	for _, alloc := range result.Allocations[:3] {
		assert.Equal(t, int64(1), alloc.Amount)
		assert.InDelta(t, 25.0/3, alloc.Percentage, 1e-12)
	}
	assert.Equal(t, int64(3), result.Allocations[3].Amount)
	assert.Equal(t, int64(5), result.Allocations[4].Amount)
	assert.Equal(t, int64(11), result.Total())
}

func TestAllocate_HalvesRoundAwayFromZero(t *testing.T) {
	a := newTestAllocator(t)

	// price 2: telemarketing 0.5 -> 1, conversion 1 -> 1, single generator 0.5 -> 1
	result, err := a.Allocate(2, []string{"Diandra"}, "Miftah", "Dewan")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Allocations[0].Amount)
	assert.Equal(t, int64(1), result.Allocations[1].Amount)
	assert.Equal(t, int64(1), result.Allocations[2].Amount)
}

func TestAllocate_CombinedComputedDirectly(t *testing.T) {
	// price 3: round(2.25) = 2, while round(0.75) + round(1.5) would be 3
	a := newTestAllocator(t)

	result, err := a.Allocate(3, []string{"Diandra"}, "Dewan", "Dewan")
	require.NoError(t, err)
	require.Len(t, result.Allocations, 2)
	assert.Equal(t, int64(2), result.Allocations[1].Amount)
}

func TestAllocate_RecordCount(t *testing.T) {
	a := newTestAllocator(t)
	names := a.Roster().Names()

	for n := 1; n <= len(names); n++ {
		leads := names[:n]

		split, err := a.Allocate(123_456_789, leads, "Anto", "Dewi")
		require.NoError(t, err)
		assert.Len(t, split.Allocations, n+2, "split with %d generators", n)

		combined, err := a.Allocate(123_456_789, leads, "Dewi", "Dewi")
		require.NoError(t, err)
		assert.Len(t, combined.Allocations, n+1, "combined with %d generators", n)
	}
}

func TestAllocate_PercentagesSumTo100(t *testing.T) {
	a := newTestAllocator(t)
	names := a.Roster().Names()

	for n := 1; n <= len(names); n++ {
		for _, conv := range []string{"Anto", "Dewi"} {
			result, err := a.Allocate(987_654_321, names[:n], "Dewi", conv)
			require.NoError(t, err)
			assert.InDelta(t, 100.0, result.TotalPercentage(), 1e-9)
		}
	}
}

func TestAllocate_LeadGeneratorDriftBound(t *testing.T) {
	a := newTestAllocator(t)
	names := a.Roster().Names()
	prices := []float64{1, 3, 7, 10, 99, 101, 1_000_001, 123_456_789, 2_500_000_003}

	for _, price := range prices {
		for n := 1; n <= len(names); n++ {
			result, err := a.Allocate(price, names[:n], "Anto", "Dewi")
			require.NoError(t, err)

			var sum int64
			for _, alloc := range result.Allocations[:n] {
				sum += alloc.Amount
			}
			drift := math.Abs(float64(sum - roundRupiah(price*0.25)))
			assert.LessOrEqual(t, drift, float64(n-1), "price=%v n=%d", price, n)
		}
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	a := newTestAllocator(t)
	leads := []string{"Nury", "Gunawan", "Arman"}

	first, err := a.Allocate(750_000_000, leads, "Kusnandar", "Dewi")
	require.NoError(t, err)
	second, err := a.Allocate(750_000_000, leads, "Kusnandar", "Dewi")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAllocate_PreservesInputOrder(t *testing.T) {
	a := newTestAllocator(t)

	result, err := a.Allocate(1_000_000, []string{"Dewi", "Arman", "Diandra"}, "Miftah", "Dewan")
	require.NoError(t, err)

	assert.Equal(t, "Dewi", result.Allocations[0].Name)
	assert.Equal(t, "Arman", result.Allocations[1].Name)
	assert.Equal(t, "Diandra", result.Allocations[2].Name)
	assert.Equal(t, 9, result.Allocations[0].SalesID)
}

func TestAllocate_ErrorCases(t *testing.T) {
	a := newTestAllocator(t)

	tests := []struct {
		name  string
		price float64
		leads []string
		tele  string
		conv  string
		want  error
	}{
		{"zero price", 0, []string{"Diandra"}, "Miftah", "Dewan", ErrInvalidPrice},
		{"negative price", -5, []string{"Diandra"}, "Miftah", "Dewan", ErrInvalidPrice},
		{"NaN price", math.NaN(), []string{"Diandra"}, "Miftah", "Dewan", ErrInvalidPrice},
		{"infinite price", math.Inf(1), []string{"Diandra"}, "Miftah", "Dewan", ErrInvalidPrice},
		{"price beyond int64 amounts", 1e19, []string{"Diandra"}, "Miftah", "Dewan", ErrInvalidPrice},
		{"astronomical price", 1e30, []string{"Diandra"}, "Miftah", "Miftah", ErrInvalidPrice},
		{"just over max price", MaxPrice + 1, []string{"Diandra"}, "Miftah", "Dewan", ErrInvalidPrice},
		{"no lead generators", 100, nil, "Miftah", "Dewan", ErrNoLeadGeneratorSelected},
		{"missing telemarketing", 100, []string{"Diandra"}, "", "Dewan", ErrRoleNotSelected},
		{"missing conversion", 100, []string{"Diandra"}, "Miftah", "", ErrRoleNotSelected},
		{"unknown lead generator", 100, []string{"Budi"}, "Miftah", "Dewan", ErrParticipantNotFound},
		{"unknown telemarketing", 100, []string{"Diandra"}, "Budi", "Dewan", ErrParticipantNotFound},
		{"unknown conversion", 100, []string{"Diandra"}, "Miftah", "Budi", ErrParticipantNotFound},
		{"case mismatch", 100, []string{"diandra"}, "Miftah", "Dewan", ErrParticipantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := a.Allocate(tt.price, tt.leads, tt.tele, tt.conv)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAllocate_MaxPrice(t *testing.T) {
	a := newTestAllocator(t)

	result, err := a.Allocate(MaxPrice, []string{"Diandra", "Miftah", "Dewan"}, "Arman", "Arman")
	require.NoError(t, err)

	for _, alloc := range result.Allocations {
		assert.Positive(t, alloc.Amount, alloc.Name)
	}
	// 2.5e14 / 3 rounds to 83,333,333,333,333 per generator
	assert.Equal(t, int64(83_333_333_333_333), result.Allocations[0].Amount)
	assert.Equal(t, int64(750_000_000_000_000), result.Allocations[3].Amount)
	assert.Equal(t, int64(999_999_999_999_999), result.Total())
}

func TestAllocate_ParticipantNotFoundNamesMissingPerson(t *testing.T) {
	a := newTestAllocator(t)

	_, err := a.Allocate(100, []string{"Diandra", "Budi"}, "Miftah", "Dewan")
	require.Error(t, err)

	var notFound *ParticipantNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Budi", notFound.Name)
	assert.Contains(t, err.Error(), "Budi")
}

func TestAllocate_SyntheticRoster(t *testing.T) {
	roster, err := NewRoster([]Entry{{ID: 10, Name: "Ana"}, {ID: 20, Name: "Bo"}})
	require.NoError(t, err)
	a, err := NewAllocator(roster, DefaultRates())
	require.NoError(t, err)

	result, err := a.Allocate(400, []string{"Ana", "Bo"}, "Ana", "Bo")
	require.NoError(t, err)

	assert.Equal(t, []Allocation{
		{SalesID: 10, Name: "Ana", Role: RoleLeadGenerator, Percentage: 12.5, Amount: 50},
		{SalesID: 20, Name: "Bo", Role: RoleLeadGenerator, Percentage: 12.5, Amount: 50},
		{SalesID: 10, Name: "Ana", Role: RoleTelemarketing, Percentage: 25, Amount: 100},
		{SalesID: 20, Name: "Bo", Role: RoleConversion, Percentage: 50, Amount: 200},
	}, result.Allocations)
}

func TestNewAllocator_Validation(t *testing.T) {
	roster, err := NewRoster(DefaultEntries())
	require.NoError(t, err)

	t.Run("nil roster", func(t *testing.T) {
		_, err := NewAllocator(nil, DefaultRates())
		assert.Error(t, err)
	})

	t.Run("broken rates", func(t *testing.T) {
		rates := DefaultRates()
		rates.Combined = 0.80
		_, err := NewAllocator(roster, rates)
		assert.ErrorIs(t, err, ErrInvalidRates)
	})
}

func TestRoundRupiah(t *testing.T) {
	tests := []struct {
		input    float64
		expected int64
	}{
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{0.8333, 1},
		{24_999_999.5, 25_000_000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, roundRupiah(tt.input), "roundRupiah(%v)", tt.input)
	}
}

func BenchmarkAllocate(b *testing.B) {
	roster, _ := NewRoster(DefaultEntries())
	a, _ := NewAllocator(roster, DefaultRates())
	leads := roster.Names()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Allocate(1_250_000_000, leads, "Anto", "Dewi")
	}
}
