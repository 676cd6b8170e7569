package storage

import (
	"errors"
	"strings"
	"testing"
)

func newTestGraph(t *testing.T, users ...User) *SocialGraph {
	t.Helper()
	g := NewSocialGraph(DefaultLimits())
	for _, u := range users {
		if _, err := g.AddUser(u); err != nil {
			t.Fatalf("AddUser(%+v) failed: %v", u, err)
		}
	}
	return g
}

func TestSocialGraph_AddUser(t *testing.T) {
	g := newTestGraph(t,
		User{ID: 0, Year: 2020, Hashtags: []string{"#a", "#b"}},
		User{ID: 7, Year: 2021, Hashtags: []string{"#b"}},
	)

	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	pos, ok := g.PositionOf(7)
	if !ok || pos != 1 {
		t.Errorf("PositionOf(7) = %d,%v, want 1,true", pos, ok)
	}
	u, err := g.User(1)
	if err != nil {
		t.Fatalf("User(1) failed: %v", err)
	}
	if u.Year != 2021 {
		t.Errorf("Year = %d, want 2021", u.Year)
	}
}

func TestSocialGraph_AddUserCopiesHashtags(t *testing.T) {
	tags := []string{"#x"}
	g := newTestGraph(t, User{ID: 1, Hashtags: tags})
	tags[0] = "#mutated"

	if g.Users()[0].Hashtags[0] != "#x" {
		t.Errorf("stored hashtag changed to %q", g.Users()[0].Hashtags[0])
	}
}

func TestSocialGraph_AddUserLimits(t *testing.T) {
	limits := Limits{MaxUsers: 1, MaxHashtags: 2, MaxHashtagLen: 5, MaxKeys: 1}

	tests := []struct {
		name   string
		users  []User
		target error
	}{
		{
			name:   "too many users",
			users:  []User{{ID: 1}, {ID: 2}},
			target: ErrCapacityExceeded,
		},
		{
			name:   "too many hashtags",
			users:  []User{{ID: 1, Hashtags: []string{"#a", "#b", "#c"}}},
			target: ErrCapacityExceeded,
		},
		{
			name:   "hashtag too long",
			users:  []User{{ID: 1, Hashtags: []string{"#" + strings.Repeat("a", 6)}}},
			target: ErrCapacityExceeded,
		},
		{
			name:   "empty hashtag",
			users:  []User{{ID: 1, Hashtags: []string{"#"}}},
			target: ErrEmptyHashtag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSocialGraph(limits)
			var err error
			for _, u := range tt.users {
				if _, err = g.AddUser(u); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}

	g := NewSocialGraph(limits)
	if _, err := g.AddUser(User{ID: 1, Hashtags: []string{"#abcde"}}); err != nil {
		t.Errorf("hashtag at the length limit rejected: %v", err)
	}
}

func TestSocialGraph_DuplicateID(t *testing.T) {
	g := newTestGraph(t, User{ID: 3})
	if _, err := g.AddUser(User{ID: 3}); !errors.Is(err, ErrDuplicateUserID) {
		t.Errorf("err = %v, want ErrDuplicateUserID", err)
	}
}

func TestSocialGraph_LoadFriendships(t *testing.T) {
	g := newTestGraph(t, User{ID: 0}, User{ID: 1}, User{ID: 2})

	err := g.LoadFriendships([][]int{
		{0, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	})
	if err != nil {
		t.Fatalf("LoadFriendships failed: %v", err)
	}

	if !g.Lists(0, 1) || !g.Lists(2, 0) || g.Lists(1, 2) {
		t.Error("Lists() disagrees with the loaded matrix")
	}
	row, err := g.Row(0)
	if err != nil {
		t.Fatalf("Row(0) failed: %v", err)
	}
	if row.GetCardinality() != 2 {
		t.Errorf("row 0 cardinality = %d, want 2", row.GetCardinality())
	}
	if g.FriendshipCount() != 4 {
		t.Errorf("FriendshipCount() = %d, want 4", g.FriendshipCount())
	}
	if len(g.Asymmetries()) != 0 {
		t.Errorf("Asymmetries() = %v, want none", g.Asymmetries())
	}
}

func TestSocialGraph_LoadFriendshipsErrors(t *testing.T) {
	tests := []struct {
		name   string
		cells  [][]int
		target error
	}{
		{"missing row", [][]int{{0, 1}}, ErrNotSquare},
		{"short row", [][]int{{0, 1}, {1}}, ErrNotSquare},
		{"bad cell", [][]int{{0, 2}, {1, 0}}, ErrInvalidCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(t, User{ID: 0}, User{ID: 1})
			if err := g.LoadFriendships(tt.cells); !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestSocialGraph_Asymmetries(t *testing.T) {
	g := newTestGraph(t, User{ID: 0}, User{ID: 1}, User{ID: 2})
	if err := g.LoadFriendships([][]int{
		{0, 1, 0},
		{0, 0, 1},
		{0, 1, 0},
	}); err != nil {
		t.Fatalf("LoadFriendships failed: %v", err)
	}

	got := g.Asymmetries()
	if len(got) != 1 || got[0] != [2]int{0, 1} {
		t.Errorf("Asymmetries() = %v, want [[0 1]]", got)
	}
}

func TestSocialGraph_OutOfRange(t *testing.T) {
	g := newTestGraph(t, User{ID: 0})
	if _, err := g.User(1); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("User(1) err = %v", err)
	}
	if _, err := g.Row(-1); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("Row(-1) err = %v", err)
	}
	row, err := g.Row(0)
	if err != nil || row.GetCardinality() != 0 {
		t.Errorf("Row(0) before load = %v, %v; want empty row", row, err)
	}
}
