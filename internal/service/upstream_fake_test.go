package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/noah-isme/monev-api/internal/upstream"
)

// fakeUpstream records requests and replays a canned body or error.
type fakeUpstream struct {
	requests []upstream.Request
	body     []byte
	err      error
	bodies   [][]byte
}

func (f *fakeUpstream) Do(_ context.Context, req upstream.Request) ([]byte, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.bodies) > 0 {
		body := f.bodies[0]
		f.bodies = f.bodies[1:]
		return body, nil
	}
	return f.body, nil
}

func (f *fakeUpstream) GetJSON(ctx context.Context, req upstream.Request, dest interface{}) error {
	body, err := f.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %v", upstream.ErrDecode, err)
	}
	return nil
}

func (f *fakeUpstream) last() upstream.Request {
	if len(f.requests) == 0 {
		return upstream.Request{}
	}
	return f.requests[len(f.requests)-1]
}
