package video

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

var ErrUnavailable = errors.New("video unavailable")

// Allow is the iframe permission list: inline playback and autoplay without
// waiting for a user gesture.
const Allow = "autoplay; encrypted-media; fullscreen; picture-in-picture"

// Embed describes what the page needs to hand to the browser's embedded viewer.
type Embed struct {
	Src   string
	Allow string
}

// Parse checks that raw is an absolute https URL with a host and turns it
// into an embeddable source. Any other input yields ErrUnavailable.
func Parse(raw string) (Embed, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Embed{}, fmt.Errorf("%w: empty url", ErrUnavailable)
	}
	// url.Parse lets spaces through in the path
	if strings.IndexFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return Embed{}, fmt.Errorf("%w: whitespace or control character in url: %q", ErrUnavailable, raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Embed{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	if !u.IsAbs() || !strings.EqualFold(u.Scheme, "https") {
		return Embed{}, fmt.Errorf("%w: not an absolute https url: %s", ErrUnavailable, raw)
	}
	if u.Hostname() == "" {
		return Embed{}, fmt.Errorf("%w: no host: %s", ErrUnavailable, raw)
	}

	q := u.Query()
	q.Set("playsinline", "1")
	u.RawQuery = q.Encode()

	return Embed{
		Src:   u.String(),
		Allow: Allow,
	}, nil
}
