// Package parser reads the plain-text inputs of both pipelines.
//
// Community input is one user per line, "u<id> <year> #tag ...", followed by
// the N x N friendship matrix and finally the "ths thc" line. Index input is a
// flat sequence of integers: the dataset followed by the queries.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-graphlab/pkg/storage"
	"github.com/dd0wney/cluso-graphlab/pkg/validation"
)

var userLine = regexp.MustCompile(`^u(-?\d+)\s+(-?\d+)(?:\s+(.*))?$`)

// SocialInput is the parsed community detection input.
type SocialInput struct {
	Users  []storage.User
	Matrix [][]int

	// Thresholds is nil when the input ends before the threshold line.
	Thresholds *validation.ThresholdsRequest

	// Truncated is set when the matrix or thresholds ended early or hit a
	// token that is not a number. Missing cells read as 0.
	Truncated bool
}

// ParseSocial reads community detection input. Hashtags longer than
// maxHashtagLen are rejected; counts are left to the store.
func ParseSocial(r io.Reader, maxHashtagLen int) (*SocialInput, error) {
	br := bufio.NewReader(r)
	in := &SocialInput{}

	lineNum := 0
	var rest strings.Builder
	for {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			break
		}
		lineNum++
		trimmed := strings.TrimRight(line, "\r\n")

		m := userLine.FindStringSubmatch(trimmed)
		if m == nil {
			// First non-user line starts the matrix.
			rest.WriteString(line)
			if _, err := io.Copy(&rest, br); err != nil {
				return nil, err
			}
			break
		}

		u, perr := parseUser(m, maxHashtagLen)
		if perr != nil {
			return nil, &LineError{Line: lineNum, Err: perr}
		}
		in.Users = append(in.Users, u)

		if err != nil {
			break
		}
	}

	tokens := strings.Fields(rest.String())
	in.Matrix, tokens, in.Truncated = readMatrix(tokens, len(in.Users))
	if !in.Truncated {
		in.Thresholds, in.Truncated = readThresholds(tokens)
	}
	return in, nil
}

func parseUser(m []string, maxHashtagLen int) (storage.User, error) {
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return storage.User{}, fmt.Errorf("%w: user id %q: %v", ErrMalformedUser, m[1], err)
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return storage.User{}, fmt.Errorf("%w: year %q: %v", ErrMalformedUser, m[2], err)
	}

	u := storage.User{ID: id, Year: year}
	for _, tag := range strings.Fields(m[3]) {
		if err := validation.ValidateHashtag(tag, maxHashtagLen); err != nil {
			return storage.User{}, fmt.Errorf("%w: %v", ErrMalformedUser, err)
		}
		u.Hashtags = append(u.Hashtags, tag)
	}
	return u, nil
}

// readMatrix consumes n*n integer tokens. Reading stops at the first token
// that is not an integer; the remaining cells stay 0.
func readMatrix(tokens []string, n int) ([][]int, []string, bool) {
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}

	for k := range n * n {
		if k >= len(tokens) {
			return matrix, nil, true
		}
		v, err := strconv.Atoi(tokens[k])
		if err != nil {
			return matrix, nil, true
		}
		matrix[k/n][k%n] = v
	}
	return matrix, tokens[n*n:], false
}

func readThresholds(tokens []string) (*validation.ThresholdsRequest, bool) {
	if len(tokens) < 2 {
		return nil, len(tokens) != 0
	}
	ths, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return nil, true
	}
	thc, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, true
	}
	return &validation.ThresholdsRequest{Friendship: ths, Core: thc}, false
}

// ThresholdOverride replaces individual thresholds. Nil fields keep the
// value resolved from input or fallback.
type ThresholdOverride struct {
	Friendship *float64
	Core       *int
}

// ResolveThresholds picks the thresholds to run with: the input's own line,
// else the fallback, with override fields applied on top. An override that
// sets both fields needs neither.
func ResolveThresholds(in *SocialInput, override ThresholdOverride, fallback *validation.ThresholdsRequest) (validation.ThresholdsRequest, error) {
	var th validation.ThresholdsRequest
	switch {
	case in != nil && in.Thresholds != nil:
		th = *in.Thresholds
	case fallback != nil:
		th = *fallback
	case override.Friendship != nil && override.Core != nil:
	default:
		return validation.ThresholdsRequest{}, ErrMissingThresholds
	}
	if override.Friendship != nil {
		th.Friendship = *override.Friendship
	}
	if override.Core != nil {
		th.Core = *override.Core
	}
	if err := validation.ValidateThresholds(&th); err != nil {
		return validation.ThresholdsRequest{}, err
	}
	return th, nil
}
