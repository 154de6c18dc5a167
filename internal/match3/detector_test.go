package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []MatchGroup
	}{
		{
			name: "settled board",
			rows: []string{"AABCD", "BAACD", "CDBAB", "DCDBA", "ABCDC"},
			want: nil,
		},
		{
			name: "L shape merges into one group",
			rows: []string{"AAABC", "ABCDB", "ACDBC", "BDCAD", "CBDCA"},
			want: []MatchGroup{{Kind: KindRed, Indices: []int{0, 1, 2, 5, 10}}},
		},
		{
			name: "T shape merges into one group",
			rows: []string{"BAAAC", "CDADB", "DBACD", "ACBDA", "BDCAB"},
			want: []MatchGroup{{Kind: KindRed, Indices: []int{1, 2, 3, 7, 12}}},
		},
		{
			name: "separate row and column runs",
			rows: []string{"AAABB", "CDCAB", "DCDCB", "ABABD", "CCDDA"},
			want: []MatchGroup{
				{Kind: KindRed, Indices: []int{0, 1, 2}},
				{Kind: KindOrange, Indices: []int{4, 9, 14}},
			},
		},
		{
			name: "locked cell breaks a run",
			rows: []string{"AaAAB", "BCDCA", "CDBDC", "DBCBD", "ABDCA"},
			want: nil,
		},
		{
			name: "rocks never match",
			rows: []string{"###A", "BCDB", "CDBC", "DBCD"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParseBoard(tt.rows...)
			got := FindMatches(b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != nil, HasMatch(b))
		})
	}
}

func TestLongRunIsLarge(t *testing.T) {
	b := MustParseBoard(
		"AAAAB",
		"BCDCA",
		"CDBDC",
		"DBCBD",
		"ABDCA",
	)
	groups := FindMatches(b)
	require.Len(t, groups, 1)
	assert.Equal(t, 4, groups[0].Size())
	assert.True(t, groups[0].IsLarge())
}

func TestVerticalRunOfFive(t *testing.T) {
	b := MustParseBoard(
		"ABCDA",
		"ACDBC",
		"ABCDB",
		"ACDBC",
		"ADBCD",
	)
	groups := FindMatches(b)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{0, 5, 10, 15, 20}, groups[0].Indices)
}

func TestRunThrough(t *testing.T) {
	b := MustParseBoard(
		"AAABC",
		"BCDAB",
		"CDBCD",
		"DBCDA",
		"ABDCB",
	)
	assert.True(t, runThrough(b, 0))
	assert.True(t, runThrough(b, 2))
	assert.False(t, runThrough(b, 3))
	assert.False(t, runThrough(b, 5))
}
