package fetch

import (
	"fmt"
	"strconv"
)

// PageURLs returns n page URLs starting at start. The trailing decimal number
// of start is incremented for each page; zero padding is kept.
//
//	PageURLs("https://example.org/weber/chap008", 3)
//	// chap008, chap009, chap010
func PageURLs(start string, n int) ([]string, error) {
	if n < 1 {
		return nil, ErrInvalidPages
	}

	i := len(start)
	for i > 0 && start[i-1] >= '0' && start[i-1] <= '9' {
		i--
	}
	digits := start[i:]
	if digits == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoPageNumber, start)
	}
	first, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoPageNumber, start, err)
	}

	prefix := start[:i]
	urls := make([]string, n)
	for k := range n {
		urls[k] = fmt.Sprintf("%s%0*d", prefix, len(digits), first+k)
	}
	return urls, nil
}
