package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/affinity/internal/config"
)

type fakeApp struct {
	runErr error
	ran    bool
	closed bool
}

func (a *fakeApp) Run() error {
	a.ran = true
	return a.runErr
}

func (a *fakeApp) Close() { a.closed = true }

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		openErr error
		runErr  error
		code    int
		closed  bool
	}{
		{"clean exit", nil, nil, 0, true},
		{"run fails", nil, errors.New("render error"), 1, true},
		{"open fails", errors.New("no display"), nil, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeApp{runErr: tt.runErr}
			code := run(config.Default(), func(*config.Config) (app, error) {
				if tt.openErr != nil {
					return nil, tt.openErr
				}
				return a, nil
			})
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.closed, a.closed)
			assert.Equal(t, tt.openErr == nil, a.ran)
		})
	}
}
