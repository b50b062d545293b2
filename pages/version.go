package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const DefaultFrameworkName = "Django"

// DefaultVersion is the framework version shown when none is configured.
// Release builds set it with -ldflags "-X github.com/go-barry/showcase/pages.DefaultVersion=...".
var DefaultVersion = "5.1.4"

var ErrInvalidVersion = errors.New("pages: invalid version")

// Version is a major.minor.patch triple. It encodes to JSON as a three
// element array.
type Version [3]int

// ParseVersion reads a dotted version. Components past the third are
// dropped, missing ones are zero.
func ParseVersion(s string) (Version, error) {
	var v Version

	s = strings.TrimSpace(s)
	if s == "" {
		return v, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}

	parts := strings.Split(s, ".")
	for i := 0; i < len(v) && i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		v[i] = n
	}
	return v, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}
