package storage

// Default bounds of the fixed-size datasets.
const (
	DefaultMaxUsers      = 50
	DefaultMaxHashtags   = 10
	DefaultMaxHashtagLen = 20
	DefaultMaxKeys       = 100
)

// Limits bounds the stores. Exceeding any of them is rejected with
// ErrCapacityExceeded; nothing is silently truncated.
type Limits struct {
	MaxUsers      int `yaml:"max_users" validate:"min=1"`
	MaxHashtags   int `yaml:"max_hashtags" validate:"min=0"`
	MaxHashtagLen int `yaml:"max_hashtag_len" validate:"min=1"` // excludes the leading '#'
	MaxKeys       int `yaml:"max_keys" validate:"min=1"`
}

// DefaultLimits returns the bounds of the reference datasets.
func DefaultLimits() Limits {
	return Limits{
		MaxUsers:      DefaultMaxUsers,
		MaxHashtags:   DefaultMaxHashtags,
		MaxHashtagLen: DefaultMaxHashtagLen,
		MaxKeys:       DefaultMaxKeys,
	}
}
