package report

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-graphlab/pkg/algorithms"
	"github.com/dd0wney/cluso-graphlab/pkg/storage"
)

// HashtagsPerLine is how many hashtags a community listing puts on one line.
const HashtagsPerLine = 5

// UserSummary writes stage 1: the user count and the user with the most
// hashtags.
func (w *Writer) UserSummary(g *storage.SocialGraph) {
	w.Header(1)
	w.printf("Number of users: %d\n", g.Len())
	if pos, ok := algorithms.MostHashtags(g); ok {
		u := g.Users()[pos]
		w.printf("u%d has the largest number of hashtags:\n", u.ID)
		w.printf("%s\n", strings.Join(u.Hashtags, " "))
	}
	w.printf("\n")
}

// FirstPair writes stage 2: the strength of connection of the first two users.
func (w *Writer) FirstPair(g *storage.SocialGraph, soc *algorithms.SOCMatrix) {
	w.Header(2)
	if g.Len() >= 2 {
		users := g.Users()
		w.printf("Strength of connection between u%d and u%d: %4.2f\n", users[0].ID, users[1].ID, soc.At(0, 1))
	}
	w.printf("\n")
}

// SOCTable writes stage 3: the full matrix, one row per line.
func (w *Writer) SOCTable(soc *algorithms.SOCMatrix) {
	w.Header(3)
	for i := range soc.Size() {
		row := soc.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%4.2f", v)
		}
		w.printf("%s\n", strings.Join(cells, " "))
	}
	w.printf("\n")
}

// Communities writes stage 4: each core user with its close friends and
// merged hashtags.
func (w *Writer) Communities(result *algorithms.CommunityDetectionResult) {
	w.Header(4)
	for _, c := range result.Communities {
		w.printf("Stage 4.1. Core user: u%d; close friends: %s\n", c.CoreID, userRefs(c.CloseFriendIDs))
		w.printf("Stage 4.2. Hashtags:\n")
		w.wrapped(c.Hashtags.All(), HashtagsPerLine)
	}
}
