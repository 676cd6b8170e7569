package algorithms

import (
	"fmt"

	"github.com/dd0wney/cluso-graphlab/pkg/sortedset"
	"github.com/dd0wney/cluso-graphlab/pkg/storage"
)

// DetectCommunities classifies core users and builds one community per core
// user: its close friends and the merged, sorted hashtags of all members.
// It sets CloseFriendCount and Core on every user of g.
func DetectCommunities(g *storage.SocialGraph, soc *SOCMatrix, th Thresholds) (*CommunityDetectionResult, error) {
	if soc.Size() != g.Len() {
		return nil, fmt.Errorf("SOC matrix covers %d users, graph has %d", soc.Size(), g.Len())
	}

	if err := CountCloseFriends(g, soc, th.Friendship); err != nil {
		return nil, err
	}
	corePositions := ClassifyCore(g, th.Core)

	result := &CommunityDetectionResult{
		Communities:   make([]*Community, 0, len(corePositions)),
		CorePositions: corePositions,
		NodeCommunity: make(map[int][]int),
	}

	// Friends first, for every community.
	for _, pos := range corePositions {
		core, err := g.User(pos)
		if err != nil {
			return nil, err
		}
		friends := ResolveCloseFriends(soc, pos, th.Friendship)
		if len(friends) != core.CloseFriendCount {
			return nil, fmt.Errorf("core user at %d: counted %d, resolved %d: %w",
				pos, core.CloseFriendCount, len(friends), ErrInvariantViolated)
		}

		ids := make([]int, len(friends))
		for k, f := range friends {
			ids[k] = g.Users()[f].ID
		}
		result.Communities = append(result.Communities, &Community{
			CorePosition:     pos,
			CoreID:           core.ID,
			CloseFriends:     friends,
			CloseFriendIDs:   ids,
			CloseFriendCount: len(friends),
		})
	}

	// Then hashtags.
	for idx, c := range result.Communities {
		c.Hashtags = AggregateHashtags(g, c)
		result.NodeCommunity[c.CorePosition] = append(result.NodeCommunity[c.CorePosition], idx)
		for _, f := range c.CloseFriends {
			result.NodeCommunity[f] = append(result.NodeCommunity[f], idx)
		}
	}

	return result, nil
}

// CountCloseFriends sets each user's CloseFriendCount to the number of
// positions j with SOC(i, j) > ths.
func CountCloseFriends(g *storage.SocialGraph, soc *SOCMatrix, ths float64) error {
	for i := 0; i < g.Len(); i++ {
		u, err := g.User(i)
		if err != nil {
			return err
		}
		u.CloseFriendCount = 0
		for j := 0; j < g.Len(); j++ {
			if soc.At(i, j) > ths {
				u.CloseFriendCount++
			}
		}
	}
	return nil
}

// ClassifyCore marks users whose CloseFriendCount exceeds thc and returns
// their positions in input order.
func ClassifyCore(g *storage.SocialGraph, thc int) []int {
	var core []int
	for i := range g.Users() {
		u := &g.Users()[i]
		u.Core = u.CloseFriendCount > thc
		if u.Core {
			core = append(core, i)
		}
	}
	return core
}

// ResolveCloseFriends returns, ascending, the positions j with SOC(pos, j) > ths.
// It uses the same comparison as CountCloseFriends.
func ResolveCloseFriends(soc *SOCMatrix, pos int, ths float64) []int {
	var friends []int
	for j := 0; j < soc.Size(); j++ {
		if soc.At(pos, j) > ths {
			friends = append(friends, j)
		}
	}
	return friends
}

// AggregateHashtags merges the core user's hashtags and then each close
// friend's, in stored order, into one sorted duplicate-free set.
func AggregateHashtags(g *storage.SocialGraph, c *Community) *sortedset.Set {
	users := g.Users()
	tags := sortedset.New(len(users[c.CorePosition].Hashtags))
	tags.InsertAll(users[c.CorePosition].Hashtags...)
	for _, f := range c.CloseFriends {
		tags.InsertAll(users[f].Hashtags...)
	}
	return tags
}

// MostHashtags returns the position of the first user with the largest number
// of hashtags, or 0 when nobody has any. ok is false for an empty graph.
func MostHashtags(g *storage.SocialGraph) (pos int, ok bool) {
	if g.Len() == 0 {
		return 0, false
	}
	best, bestCount := 0, 0
	for i, u := range g.Users() {
		if len(u.Hashtags) > bestCount {
			best, bestCount = i, len(u.Hashtags)
		}
	}
	return best, true
}
