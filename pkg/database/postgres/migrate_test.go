package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(ms []Migration) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name string
		in   []Migration
		want []string
	}{
		{
			name: "declaration order without deps",
			in:   []Migration{{Name: "a"}, {Name: "b"}, {Name: "c"}},
			want: []string{"a", "b", "c"},
		},
		{
			name: "dependency declared later runs first",
			in: []Migration{
				{Name: "orders", DependsOn: []string{"counters"}},
				{Name: "counters"},
				{Name: "jobs"},
			},
			want: []string{"counters", "orders", "jobs"},
		},
		{
			name: "diamond",
			in: []Migration{
				{Name: "d", DependsOn: []string{"b", "c"}},
				{Name: "c", DependsOn: []string{"a"}},
				{Name: "b", DependsOn: []string{"a"}},
				{Name: "a"},
			},
			want: []string{"a", "c", "b", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Order(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestOrderRejectsBadGraphs(t *testing.T) {
	_, err := Order([]Migration{{Name: "a", DependsOn: []string{"b"}}, {Name: "b", DependsOn: []string{"a"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")

	_, err = Order([]Migration{{Name: "a", DependsOn: []string{"missing"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")

	_, err = Order([]Migration{{Name: "a"}, {Name: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
