package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
)

// fakeAPI implements API for unit tests: it records the last call and
// marshals a canned response into out.
type fakeAPI struct {
	lastMethod string
	lastPath   string
	lastOpts   *api.RequestOptions
	calls      int

	response any
	err      error
}

func (f *fakeAPI) do(method, path string, opts *api.RequestOptions, out any) error {
	f.lastMethod = method
	f.lastPath = path
	f.lastOpts = opts
	f.calls++
	if f.err != nil {
		return f.err
	}
	if out != nil && f.response != nil {
		b, err := json.Marshal(f.response)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, out)
	}
	return nil
}

func (f *fakeAPI) Get(ctx context.Context, path string, opts *api.RequestOptions, out any) error {
	return f.do(http.MethodGet, path, opts, out)
}

func (f *fakeAPI) Post(ctx context.Context, path string, opts *api.RequestOptions, out any) error {
	return f.do(http.MethodPost, path, opts, out)
}

func (f *fakeAPI) Patch(ctx context.Context, path string, opts *api.RequestOptions, out any) error {
	return f.do(http.MethodPatch, path, opts, out)
}

func (f *fakeAPI) Delete(ctx context.Context, path string, opts *api.RequestOptions) error {
	return f.do(http.MethodDelete, path, opts, nil)
}

// memStore is a minimal in-memory credentials.Store for service tests.
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *memStore) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}
