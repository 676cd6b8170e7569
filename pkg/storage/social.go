package storage

import (
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// User is one profile of the social graph. Its positional index in the
// SocialGraph is the handle the friendship matrix uses; ID is only its label.
type User struct {
	ID       int
	Year     int
	Hashtags []string // input order, duplicates kept

	// Derived by community detection.
	CloseFriendCount int
	Core             bool
}

// SocialGraph is the adjacency store: users plus a square 0/1 friendship
// matrix over their positions, one roaring bitmap per row.
type SocialGraph struct {
	limits Limits
	users  []User
	ids    map[int]int // user ID -> position
	rows   []*roaring.Bitmap
}

// NewSocialGraph creates an empty store bounded by limits.
func NewSocialGraph(limits Limits) *SocialGraph {
	return &SocialGraph{
		limits: limits,
		users:  make([]User, 0, limits.MaxUsers),
		ids:    make(map[int]int, limits.MaxUsers),
	}
}

// AddUser appends a user and returns its position.
func (g *SocialGraph) AddUser(u User) (int, error) {
	pos := len(g.users)
	if pos >= g.limits.MaxUsers {
		return -1, CapacityError("AddUser", "user", g.limits.MaxUsers)
	}
	if len(u.Hashtags) > g.limits.MaxHashtags {
		return -1, NewError("AddUser").User(pos).Field("hashtags").
			Cause(ErrCapacityExceeded).Err()
	}
	for _, tag := range u.Hashtags {
		text := strings.TrimPrefix(tag, "#")
		if text == "" {
			return -1, NewError("AddUser").User(pos).Field("hashtags").Cause(ErrEmptyHashtag).Err()
		}
		if len(text) > g.limits.MaxHashtagLen {
			return -1, NewError("AddUser").User(pos).Contextf("hashtag %q", tag).
				Cause(ErrCapacityExceeded).Err()
		}
	}
	if _, dup := g.ids[u.ID]; dup {
		return -1, NewError("AddUser").User(pos).Contextf("id %d", u.ID).Cause(ErrDuplicateUserID).Err()
	}

	u.Hashtags = append([]string(nil), u.Hashtags...)
	g.users = append(g.users, u)
	g.ids[u.ID] = pos
	return pos, nil
}

// LoadFriendships installs the friendship matrix. It must be len(users) square
// with 0/1 cells. The matrix is immutable afterwards.
func (g *SocialGraph) LoadFriendships(cells [][]int) error {
	n := len(g.users)
	if len(cells) != n {
		return NewError("LoadFriendships").Matrix().
			Contextf("%d rows for %d users", len(cells), n).Cause(ErrNotSquare).Err()
	}

	rows := make([]*roaring.Bitmap, n)
	for i, row := range cells {
		if len(row) != n {
			return NewError("LoadFriendships").Row(i).
				Contextf("%d columns for %d users", len(row), n).Cause(ErrNotSquare).Err()
		}
		bm := roaring.New()
		for j, cell := range row {
			switch cell {
			case 0:
			case 1:
				bm.Add(uint32(j))
			default:
				return NewError("LoadFriendships").Row(i).
					Contextf("column %d holds %d", j, cell).Cause(ErrInvalidCell).Err()
			}
		}
		rows[i] = bm
	}
	g.rows = rows
	return nil
}

// Len returns the number of users.
func (g *SocialGraph) Len() int {
	return len(g.users)
}

// Limits returns the bounds the store was created with.
func (g *SocialGraph) Limits() Limits {
	return g.limits
}

// User returns the user at pos for reading and for setting derived fields.
func (g *SocialGraph) User(pos int) (*User, error) {
	if pos < 0 || pos >= len(g.users) {
		return nil, NewError("User").User(pos).Cause(ErrPositionOutOfRange).Err()
	}
	return &g.users[pos], nil
}

// Users returns the users in position order. Callers must not append to it.
func (g *SocialGraph) Users() []User {
	return g.users
}

// PositionOf returns the position of the user with the given ID.
func (g *SocialGraph) PositionOf(id int) (int, bool) {
	pos, ok := g.ids[id]
	return pos, ok
}

// Row returns the adjacency row of the user at pos. Rows are empty until
// LoadFriendships succeeds.
func (g *SocialGraph) Row(pos int) (*roaring.Bitmap, error) {
	if pos < 0 || pos >= len(g.users) {
		return nil, NewError("Row").Row(pos).Cause(ErrPositionOutOfRange).Err()
	}
	if g.rows == nil {
		return roaring.New(), nil
	}
	return g.rows[pos], nil
}

// Lists reports whether the user at i lists the user at j as a friend.
func (g *SocialGraph) Lists(i, j int) bool {
	if g.rows == nil || i < 0 || i >= len(g.rows) || j < 0 {
		return false
	}
	return g.rows[i].Contains(uint32(j))
}

// Asymmetries returns the pairs (i, j), i < j, where exactly one of the two
// users lists the other. The matrix is assumed symmetric but never forced to be.
func (g *SocialGraph) Asymmetries() [][2]int {
	var pairs [][2]int
	for i := range g.rows {
		for j := i + 1; j < len(g.rows); j++ {
			if g.Lists(i, j) != g.Lists(j, i) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// FriendshipCount returns the number of 1 cells in the matrix.
func (g *SocialGraph) FriendshipCount() uint64 {
	var total uint64
	for _, row := range g.rows {
		total += row.GetCardinality()
	}
	return total
}
