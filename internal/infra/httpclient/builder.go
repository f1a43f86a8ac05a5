package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

// BuildGet builds a GET request for base with query merged into any query
// string base already carries.
func BuildGet(ctx context.Context, base string, query url.Values) (*http.Request, error) {
	if strings.TrimSpace(base) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty url: %w", domain.ErrInvalidConfig),
		}
	}

	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = fmt.Errorf("url %q must be absolute", base)
		}
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
