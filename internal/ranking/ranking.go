// Package ranking orders staff records by institutional seniority instead of
// insertion or storage order.
package ranking

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// Unranked is the sort key for positions missing from the hierarchy table.
// It lists after every known position.
const Unranked = 999

// positionRanks maps normalized position titles to their sort rank: school
// leadership first, grade heads, grade teachers, then student prefects.
// Titles outside the table fall to Unranked; that includes most free-text
// positions and is intentional.
var positionRanks = map[string]int{
	"principal":           1,
	"deputy principal":    2,
	"assistant principal": 3,
	"head of grade 1":     4,
	"head of grade 2":     5,
	"head of grade 3":     6,
	"head of grade 4":     7,
	"head of grade 5":     8,
	"head of grade 6":     9,
	"head of grade 7":     10,
	"head of grade 8":     11,
	"head of grade 9":     12,
	"head of grade 10":    13,
	"head of grade 11":    14,
	"head of grade 12":    15,
	"head of grade 13":    16,
	"grade 1 teacher":     17,
	"grade 2 teacher":     18,
	"grade 3 teacher":     19,
	"grade 4 teacher":     20,
	"grade 5 teacher":     21,
	"grade 6 teacher":     22,
	"grade 7 teacher":     23,
	"grade 8 teacher":     24,
	"grade 9 teacher":     25,
	"grade 10 teacher":    26,
	"grade 11 teacher":    27,
	"grade 12 teacher":    28,
	"grade 13 teacher":    29,
	"head prefect":        30,
	"deputy head prefect": 31,
	"prefect":             32,
}

// Normalize canonicalizes a position title for table lookup: trimmed,
// lowercased, with every whitespace run collapsed to a single space.
func Normalize(position string) string {
	return strings.Join(strings.Fields(strings.ToLower(position)), " ")
}

// Rank returns the hierarchy rank for a position title. It never fails;
// unknown and empty titles rank Unranked.
func Rank(position string) int {
	if rank, ok := positionRanks[Normalize(position)]; ok {
		return rank
	}
	return Unranked
}

// Sort orders records by ascending rank, breaking ties by locale-aware
// comparison of the name field. The sort is stable, so records that compare
// equal keep their relative order.
func Sort(records []domain.StaffRecord) {
	collator := collate.New(language.Und)
	sort.SliceStable(records, func(i, j int) bool {
		return less(collator, records[i], records[j])
	})
}

func less(collator *collate.Collator, a, b domain.StaffRecord) bool {
	rankA, rankB := Rank(a.Position), Rank(b.Position)
	if rankA != rankB {
		return rankA < rankB
	}
	return collator.CompareString(a.Name, b.Name) < 0
}
