package gitutil_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ngscaffold/internal/gitutil"
)

type call struct {
	dir  string
	args string
}

// MockRunner answers each git subcommand with a canned result.
type MockRunner struct {
	results map[string]result
	calls   []call
}

type result struct {
	output string
	err    error
}

func (m *MockRunner) CombinedOutput(ctx context.Context, dir, name string, arg ...string) ([]byte, error) {
	m.calls = append(m.calls, call{dir: dir, args: name + " " + strings.Join(arg, " ")})
	r := m.results[arg[0]]
	return []byte(r.output), r.err
}

var errExit = errors.New("exit status 128")

func TestIsRepo(t *testing.T) {
	tests := []struct {
		name    string
		res     result
		want    bool
		wantErr bool
	}{
		{
			name: "inside work tree",
			res:  result{output: "true\n"},
			want: true,
		},
		{
			name: "not a git repository",
			res:  result{output: "fatal: not a git repository (or any of the parent directories): .git", err: errExit},
			want: false,
		},
		{
			name:    "git missing",
			res:     result{output: "", err: errors.New("exec: \"git\": executable file not found in $PATH")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockRunner{results: map[string]result{"rev-parse": tt.res}}
			gitutil.SetRunner(m)
			defer gitutil.SetRunner(gitutil.DefaultRunner{}) // Reset after test

			got, err := gitutil.IsRepo(context.Background(), "/work/demo")
			if (err != nil) != tt.wantErr {
				t.Fatalf("IsRepo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IsRepo() = %v, want %v", got, tt.want)
			}
			if len(m.calls) != 1 || m.calls[0].dir != "/work/demo" {
				t.Errorf("unexpected calls: %+v", m.calls)
			}
		})
	}
}

func TestInit(t *testing.T) {
	notRepo := result{output: "fatal: not a git repository", err: errExit}

	tests := []struct {
		name      string
		results   map[string]result
		want      bool
		wantErr   bool
		wantCalls []string
	}{
		{
			name:      "creates repository",
			results:   map[string]result{"rev-parse": notRepo, "init": {}},
			want:      true,
			wantCalls: []string{"git rev-parse --is-inside-work-tree", "git init --quiet"},
		},
		{
			name:      "already a repository",
			results:   map[string]result{"rev-parse": {output: "true\n"}},
			want:      false,
			wantCalls: []string{"git rev-parse --is-inside-work-tree"},
		},
		{
			name:      "init fails",
			results:   map[string]result{"rev-parse": notRepo, "init": {output: "permission denied", err: errExit}},
			wantErr:   true,
			wantCalls: []string{"git rev-parse --is-inside-work-tree", "git init --quiet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockRunner{results: tt.results}
			gitutil.SetRunner(m)
			defer gitutil.SetRunner(gitutil.DefaultRunner{})

			got, err := gitutil.Init(context.Background(), "/work/demo")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Init() = %v, want %v", got, tt.want)
			}
			if len(m.calls) != len(tt.wantCalls) {
				t.Fatalf("calls = %+v, want %v", m.calls, tt.wantCalls)
			}
			for i, c := range m.calls {
				if c.args != tt.wantCalls[i] {
					t.Errorf("call %d = %q, want %q", i, c.args, tt.wantCalls[i])
				}
			}
		})
	}
}
