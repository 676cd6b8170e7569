package algorithms

import (
	"errors"

	"github.com/dd0wney/cluso-graphlab/pkg/sortedset"
)

// ErrInvariantViolated is returned when the close-friend set resolved for a
// core user disagrees with the count taken for it earlier.
var ErrInvariantViolated = errors.New("close friend count does not match resolved close friends")

// Thresholds configures community detection.
type Thresholds struct {
	Friendship float64 // ths: SOC must be strictly greater to count as a close friend
	Core       int     // thc: close-friend count must be strictly greater to be core
}

// Community is the neighbourhood of one core user
type Community struct {
	CorePosition     int
	CoreID           int
	CloseFriends     []int // positions, ascending
	CloseFriendIDs   []int // IDs aligned with CloseFriends
	CloseFriendCount int
	Hashtags         *sortedset.Set // union of core and close-friend hashtags
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []*Community  // one per core user, in position order
	CorePositions []int
	NodeCommunity map[int][]int // user position -> indices into Communities it belongs to
}
