package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded() *Store {
	return New(nil, DefaultSeed...)
}

func TestAppendKeepsSeedThenInsertionOrder(t *testing.T) {
	s := seeded()
	added := []string{"Ateneo", "DLSU", "Mapua", "Ateneo"}
	for _, n := range added {
		s.Append(n)
	}

	want := append([]string{"University of the Philippines", "UST"}, added...)
	require.Equal(t, want, s.List())
	require.Equal(t, len(want), s.Len())
}

func TestAppendDoesNotValidate(t *testing.T) {
	s := New(nil)
	s.Append("")
	s.Append("  ")
	require.Equal(t, []string{"", "  "}, s.List())
}

func TestReplaceAt(t *testing.T) {
	tests := []struct {
		index int
		want  []string
	}{
		{0, []string{"X", "UST"}},
		{1, []string{"University of the Philippines", "X"}},
		{-1, []string{"University of the Philippines", "UST"}},
		{2, []string{"University of the Philippines", "UST"}},
		{5, []string{"University of the Philippines", "UST"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("index %d", tt.index), func(t *testing.T) {
			s := seeded()
			got := s.ReplaceAt(tt.index, "X")
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, s.List())
		})
	}
}

func TestRemoveAt(t *testing.T) {
	base := []string{"a", "b", "c", "d"}
	tests := []struct {
		index int
		want  []string
	}{
		{0, []string{"b", "c", "d"}},
		{2, []string{"a", "b", "d"}},
		{3, []string{"a", "b", "c"}},
		{-1, base},
		{4, base},
		{99, base},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("index %d", tt.index), func(t *testing.T) {
			s := New(nil, base...)
			got := s.RemoveAt(tt.index)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, s.List())
		})
	}
}

func TestScenario(t *testing.T) {
	s := seeded()

	require.Equal(t, []string{"University of the Philippines", "UST", "Ateneo"}, s.Append("Ateneo"))
	require.Equal(t, []string{"University of the Philippines", "Ateneo"}, s.RemoveAt(1))
	require.Equal(t, []string{"UP Diliman", "Ateneo"}, s.ReplaceAt(0, "UP Diliman"))
	require.Equal(t, []string{"UP Diliman", "Ateneo"}, s.List())
}

func TestSnapshotsAreIndependent(t *testing.T) {
	s := seeded()
	snap := s.List()

	snap[0] = "mutated by caller"
	require.Equal(t, "University of the Philippines", s.List()[0])

	s.ReplaceAt(1, "Ateneo")
	require.Equal(t, "UST", snap[1])
}

func TestNewCopiesSeed(t *testing.T) {
	seed := []string{"a", "b"}
	s := New(nil, seed...)
	seed[0] = "z"
	require.Equal(t, []string{"a", "b"}, s.List())
}

func TestEmptyStoreListIsNotNil(t *testing.T) {
	s := New(nil)
	require.NotNil(t, s.List())
	require.Empty(t, s.List())
	require.Empty(t, s.RemoveAt(0))
}
