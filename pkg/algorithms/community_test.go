package algorithms

import (
	"errors"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-graphlab/pkg/storage"
)

// setupCommunityTestGraph builds five users:
//
//	SOC(0,1)=0.25 SOC(0,2)=0.2 SOC(0,4)=0.5 SOC(1,4)=0.25 SOC(2,4)=0.2
//
// and 0 for every other pair.
func setupCommunityTestGraph(t *testing.T) *storage.SocialGraph {
	t.Helper()

	g := storage.NewSocialGraph(storage.DefaultLimits())
	users := []storage.User{
		{ID: 0, Year: 2010, Hashtags: []string{"#art", "#travel"}},
		{ID: 1, Year: 2012, Hashtags: []string{"#kpop", "#music"}},
		{ID: 2, Year: 2015, Hashtags: []string{"#travel", "#baseball"}},
		{ID: 3, Year: 2019, Hashtags: []string{"#baseball"}},
		{ID: 4, Year: 2020, Hashtags: []string{"#art", "#kpop", "#travel"}},
	}
	for _, u := range users {
		if _, err := g.AddUser(u); err != nil {
			t.Fatalf("AddUser failed: %v", err)
		}
	}
	err := g.LoadFriendships([][]int{
		{0, 1, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 1, 1},
		{0, 0, 1, 0, 0},
		{1, 1, 1, 0, 0},
	})
	if err != nil {
		t.Fatalf("LoadFriendships failed: %v", err)
	}
	return g
}

func detect(t *testing.T, g *storage.SocialGraph, th Thresholds) *CommunityDetectionResult {
	t.Helper()
	soc, err := BuildSOCMatrix(g)
	if err != nil {
		t.Fatalf("BuildSOCMatrix failed: %v", err)
	}
	result, err := DetectCommunities(g, soc, th)
	if err != nil {
		t.Fatalf("DetectCommunities failed: %v", err)
	}
	return result
}

func TestSOCMatrix_Fixture(t *testing.T) {
	g := setupCommunityTestGraph(t)
	soc, err := BuildSOCMatrix(g)
	if err != nil {
		t.Fatalf("BuildSOCMatrix failed: %v", err)
	}

	expected := map[[2]int]float64{
		{0, 1}: 0.25, {0, 2}: 0.2, {0, 4}: 0.5, {1, 4}: 0.25, {2, 4}: 0.2,
	}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			if got := soc.At(i, j); got != expected[[2]int{i, j}] {
				t.Errorf("SOC(%d,%d) = %v, want %v", i, j, got, expected[[2]int{i, j}])
			}
		}
	}
}

func TestDetectCommunities_ThreeCores(t *testing.T) {
	g := setupCommunityTestGraph(t)

	result := detect(t, g, Thresholds{Friendship: 0.2, Core: 1})

	if !slices.Equal(result.CorePositions, []int{0, 1, 4}) {
		t.Fatalf("CorePositions = %v, want [0 1 4]", result.CorePositions)
	}

	wantFriends := [][]int{{1, 4}, {0, 4}, {0, 1}}
	wantTags := []string{"#art", "#kpop", "#music", "#travel"}
	for k, c := range result.Communities {
		if !slices.Equal(c.CloseFriends, wantFriends[k]) {
			t.Errorf("community %d friends = %v, want %v", k, c.CloseFriends, wantFriends[k])
		}
		if c.CloseFriendCount != len(wantFriends[k]) {
			t.Errorf("community %d count = %d", k, c.CloseFriendCount)
		}
		if got := c.Hashtags.Slice(); !slices.Equal(got, wantTags) {
			t.Errorf("community %d hashtags = %v, want %v", k, got, wantTags)
		}
	}

	// SOC(0,2) = 0.2 is not strictly greater than ths.
	for _, c := range result.Communities {
		if slices.Contains(c.CloseFriends, 2) {
			t.Errorf("user 2 must not be a close friend of %d", c.CorePosition)
		}
	}

	counts := []int{2, 2, 0, 0, 2}
	for i, u := range g.Users() {
		if u.CloseFriendCount != counts[i] {
			t.Errorf("user %d CloseFriendCount = %d, want %d", i, u.CloseFriendCount, counts[i])
		}
		if u.Core != (counts[i] > 1) {
			t.Errorf("user %d Core = %v", i, u.Core)
		}
	}
}

func TestDetectCommunities_PairOfCores(t *testing.T) {
	g := setupCommunityTestGraph(t)

	result := detect(t, g, Thresholds{Friendship: 0.3, Core: 0})

	if len(result.Communities) != 2 {
		t.Fatalf("Expected 2 communities, got %d", len(result.Communities))
	}
	first, second := result.Communities[0], result.Communities[1]
	if first.CoreID != 0 || !slices.Equal(first.CloseFriendIDs, []int{4}) {
		t.Errorf("first community = core %d friends %v", first.CoreID, first.CloseFriendIDs)
	}
	if second.CoreID != 4 || !slices.Equal(second.CloseFriendIDs, []int{0}) {
		t.Errorf("second community = core %d friends %v", second.CoreID, second.CloseFriendIDs)
	}
	want := []string{"#art", "#kpop", "#travel"}
	if got := first.Hashtags.Slice(); !slices.Equal(got, want) {
		t.Errorf("hashtags = %v, want %v", got, want)
	}
	if !slices.Equal(result.NodeCommunity[0], []int{0, 1}) {
		t.Errorf("NodeCommunity[0] = %v, want [0 1]", result.NodeCommunity[0])
	}
	if _, ok := result.NodeCommunity[3]; ok {
		t.Error("user 3 belongs to no community")
	}
}

func TestDetectCommunities_NoCores(t *testing.T) {
	g := setupCommunityTestGraph(t)

	result := detect(t, g, Thresholds{Friendship: 0.2, Core: 2})

	if len(result.Communities) != 0 || len(result.CorePositions) != 0 {
		t.Errorf("Expected no communities, got %d", len(result.Communities))
	}
}

func TestDetectCommunities_SizeMismatch(t *testing.T) {
	g := setupCommunityTestGraph(t)
	other := storage.NewSocialGraph(storage.DefaultLimits())
	soc, _ := BuildSOCMatrix(other)

	if _, err := DetectCommunities(g, soc, Thresholds{}); err == nil {
		t.Error("Expected error for mismatched SOC matrix")
	}
}

func TestAggregateHashtags_CoreFirstAndDuplicates(t *testing.T) {
	g := storage.NewSocialGraph(storage.DefaultLimits())
	g.AddUser(storage.User{ID: 10, Hashtags: []string{"#b", "#a", "#b"}})
	g.AddUser(storage.User{ID: 11, Hashtags: []string{"#a", "#C"}})

	tags := AggregateHashtags(g, &Community{CorePosition: 0, CloseFriends: []int{1}})

	if got := tags.Slice(); !slices.Equal(got, []string{"#C", "#a", "#b"}) {
		t.Errorf("hashtags = %v", got)
	}
}

func TestMostHashtags(t *testing.T) {
	g := setupCommunityTestGraph(t)
	if pos, ok := MostHashtags(g); !ok || pos != 4 {
		t.Errorf("MostHashtags() = %d,%v, want 4,true", pos, ok)
	}

	tie := storage.NewSocialGraph(storage.DefaultLimits())
	tie.AddUser(storage.User{ID: 0})
	tie.AddUser(storage.User{ID: 1, Hashtags: []string{"#a", "#b"}})
	tie.AddUser(storage.User{ID: 2, Hashtags: []string{"#c", "#d"}})
	if pos, _ := MostHashtags(tie); pos != 1 {
		t.Errorf("tie resolved to %d, want first maximum 1", pos)
	}

	none := storage.NewSocialGraph(storage.DefaultLimits())
	none.AddUser(storage.User{ID: 5})
	none.AddUser(storage.User{ID: 6})
	if pos, ok := MostHashtags(none); !ok || pos != 0 {
		t.Errorf("no hashtags gave %d,%v, want 0,true", pos, ok)
	}

	if _, ok := MostHashtags(storage.NewSocialGraph(storage.DefaultLimits())); ok {
		t.Error("empty graph should report ok=false")
	}
}

func TestCloseFriendInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	const n = 9

	properties.Property("counted close friends equal resolved close friends", prop.ForAll(
		func(bits []bool, ths float64, thc int) bool {
			g := randomGraph(t, n, bits)
			soc, err := BuildSOCMatrix(g)
			if err != nil {
				return false
			}
			result, err := DetectCommunities(g, soc, Thresholds{Friendship: ths, Core: thc})
			if err != nil {
				return false
			}
			for _, c := range result.Communities {
				u := g.Users()[c.CorePosition]
				if !u.Core || u.CloseFriendCount != len(c.CloseFriends) {
					return false
				}
				for _, f := range c.CloseFriends {
					if soc.At(c.CorePosition, f) <= ths {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOfN(n*(n-1)/2, gen.Bool()),
		gen.Float64Range(0, 1),
		gen.IntRange(0, n),
	))

	properties.TestingRun(t)
}

func TestErrInvariantViolated_Wraps(t *testing.T) {
	err := errors.Join(ErrInvariantViolated)
	if !errors.Is(err, ErrInvariantViolated) {
		t.Error("sentinel should be matchable")
	}
}
