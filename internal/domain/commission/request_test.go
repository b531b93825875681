package commission

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	valid := Request{
		Price:          100_000_000,
		LeadGenerators: []string{"Diandra"},
		Telemarketing:  "Miftah",
		Conversion:     "Dewan",
	}
	require.NoError(t, valid.Validate(DefaultMaxLeadGenerators))

	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"zero price", func(r *Request) { r.Price = 0 }, ErrInvalidPrice},
		{"NaN price", func(r *Request) { r.Price = math.NaN() }, ErrInvalidPrice},
		{"infinite price", func(r *Request) { r.Price = math.Inf(1) }, ErrInvalidPrice},
		{"price 1e19", func(r *Request) { r.Price = 1e19 }, ErrInvalidPrice},
		{"price 1e30", func(r *Request) { r.Price = 1e30 }, ErrInvalidPrice},
		{"no lead generators", func(r *Request) { r.LeadGenerators = nil }, ErrNoLeadGeneratorSelected},
		{"blank lead generator", func(r *Request) { r.LeadGenerators = []string{""} }, ErrNoLeadGeneratorSelected},
		{"no telemarketing", func(r *Request) { r.Telemarketing = "" }, ErrRoleNotSelected},
		{"no conversion", func(r *Request) { r.Conversion = "" }, ErrRoleNotSelected},
		{"duplicate lead generator", func(r *Request) { r.LeadGenerators = []string{"Diandra", "Diandra"} }, ErrDuplicateLeadGenerator},
		{"over the cap", func(r *Request) {
			r.LeadGenerators = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
		}, ErrSelectionLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.LeadGenerators = append([]string(nil), valid.LeadGenerators...)
			tt.mutate(&req)
			assert.ErrorIs(t, req.Validate(DefaultMaxLeadGenerators), tt.want)
		})
	}
}

func TestRequest_ValidateOrder(t *testing.T) {
	// price is reported before anything else
	req := Request{}
	assert.ErrorIs(t, req.Validate(10), ErrInvalidPrice)

	req.Price = 1
	assert.ErrorIs(t, req.Validate(10), ErrNoLeadGeneratorSelected)

	req.LeadGenerators = []string{"Diandra"}
	assert.ErrorIs(t, req.Validate(10), ErrRoleNotSelected)
}

func TestRequest_NoCap(t *testing.T) {
	req := Request{
		Price:          1,
		LeadGenerators: []string{"a", "b", "c"},
		Telemarketing:  "x",
		Conversion:     "y",
	}
	assert.NoError(t, req.Validate(0))
	assert.ErrorIs(t, req.Validate(2), ErrSelectionLimitExceeded)
}

func TestRequest_Allocate(t *testing.T) {
	a := newTestAllocator(t)

	req := Request{
		Price:          100_000_000,
		LeadGenerators: []string{"Diandra", "Miftah"},
		Telemarketing:  "Dewan",
		Conversion:     "Dewan",
	}
	result, err := req.Allocate(a, DefaultMaxLeadGenerators)
	require.NoError(t, err)
	assert.Equal(t, int64(100_000_000), result.Total())

	req.Price = 0
	_, err = req.Allocate(a, DefaultMaxLeadGenerators)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidPrice, CodeInvalidPrice},
		{ErrNoLeadGeneratorSelected, CodeNoLeadGeneratorSelected},
		{ErrRoleNotSelected, CodeRoleNotSelected},
		{ErrSelectionLimitExceeded, CodeSelectionLimitExceeded},
		{ErrDuplicateLeadGenerator, CodeDuplicateLeadGenerator},
		{&ParticipantNotFoundError{Name: "Budi"}, CodeParticipantNotFound},
		{errors.New("disk on fire"), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err), "Code(%v)", tt.err)
		assert.Equal(t, tt.want != "", IsInputError(tt.err))
	}
}
