package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-directory/internal/domain"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Principal":             "principal",
		"  Principal  ":         "principal",
		"PRINCIPAL":             "principal",
		"deputy   principal":    "deputy principal",
		"\tHead of  Grade 10\n": "head of grade 10",
		"":                      "",
		"   ":                   "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "input %q", input)
	}
}

func TestRankKnownPositions(t *testing.T) {
	assert.Equal(t, 1, Rank("principal"))
	assert.Equal(t, 2, Rank("Deputy Principal"))
	assert.Equal(t, 3, Rank("  ASSISTANT   PRINCIPAL "))
	assert.Equal(t, 4, Rank("Head of Grade 1"))
	assert.Equal(t, 16, Rank("Head of Grade 13"))
	assert.Equal(t, 17, Rank("Grade 1 Teacher"))
	assert.Equal(t, 29, Rank("Grade 13 Teacher"))
	assert.Equal(t, 30, Rank("Head Prefect"))
	assert.Equal(t, 31, Rank("Deputy Head Prefect"))
	assert.Equal(t, 32, Rank("Prefect"))
}

func TestRankTableIsComplete(t *testing.T) {
	require.Len(t, positionRanks, 32)
	seen := make(map[int]string, len(positionRanks))
	for key, rank := range positionRanks {
		assert.True(t, rank >= 1 && rank <= 32, "rank %d out of range", rank)
		assert.NotContains(t, seen, rank, "rank %d duplicated by %q and %q", rank, seen[rank], key)
		seen[rank] = key
	}
}

func TestRankUnknownPositions(t *testing.T) {
	assert.Equal(t, Unranked, Rank(""))
	assert.Equal(t, Unranked, Rank("   "))
	assert.Equal(t, Unranked, Rank("unknown title"))
	assert.Equal(t, Unranked, Rank("Math Teacher"))
	assert.Equal(t, Unranked, Rank("Security Guard"))
}

func TestSortOrdersByRankBeforeName(t *testing.T) {
	records := []domain.StaffRecord{
		{Name: "Amy", Position: "Deputy Principal"},
		{Name: "Bob", Position: "Principal"},
	}
	Sort(records)
	assert.Equal(t, "Bob", records[0].Name)
	assert.Equal(t, "Amy", records[1].Name)
}

func TestSortBreaksTiesAlphabetically(t *testing.T) {
	records := []domain.StaffRecord{
		{Name: "Zoe", Position: "Math Teacher"},
		{Name: "Amy", Position: "Art Teacher"},
	}
	Sort(records)
	assert.Equal(t, "Amy", records[0].Name)
	assert.Equal(t, "Zoe", records[1].Name)
}

func TestSortUsesLocaleAwareNameComparison(t *testing.T) {
	// A byte-wise comparison would push "Émile" past "Zoe".
	records := []domain.StaffRecord{
		{Name: "Zoe", Position: "Cleaner"},
		{Name: "Émile", Position: "Cleaner"},
		{Name: "Frank", Position: "Cleaner"},
	}
	Sort(records)
	assert.Equal(t, []string{"Émile", "Frank", "Zoe"}, names(records))
}

func TestSortIsIdempotent(t *testing.T) {
	records := []domain.StaffRecord{
		{Name: "Cara", Position: "Grade 2 Teacher"},
		{Name: "Amy", Position: "Librarian"},
		{Name: "Bob", Position: "Principal"},
		{Name: "Dana", Position: "Librarian"},
	}
	Sort(records)
	first := names(records)
	Sort(records)
	assert.Equal(t, first, names(records))
}

func TestSortKeepsRelativeOrderOfEqualRecords(t *testing.T) {
	records := []domain.StaffRecord{
		{ID: "a", Name: "Sam", Position: "Cleaner"},
		{ID: "b", Name: "Sam", Position: "Janitor"},
	}
	Sort(records)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
}

func names(records []domain.StaffRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}
