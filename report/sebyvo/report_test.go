// SPDX-License-Identifier: GPL-3.0-or-later

package sebyvo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListing(t *testing.T) {
	tests := map[string]struct {
		lines []string
		want  []string
	}{
		"blank lines skipped, no dedup, order preserved": {
			lines: []string{"a:x", "", "b:y", "a:z"},
			want:  []string{"x", "y", "z"},
		},
		"identifier is trimmed remainder after first colon": {
			lines: []string{"srm: se1.example.org:8443/srm", "gsiftp:  se2.example.org "},
			want:  []string{"se1.example.org:8443/srm", "se2.example.org"},
		},
		"repeated identifiers repeat": {
			lines: []string{"a: se1", "b: se1"},
			want:  []string{"se1", "se1"},
		},
		"lines without a colon skipped": {
			lines: []string{"header", "a: se1"},
			want:  []string{"se1"},
		},
		"whitespace-only lines skipped": {
			lines: []string{"   ", "a: se1", "\t"},
			want:  []string{"se1"},
		},
		"empty input": {
			lines: nil,
			want:  nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, ParseListing(test.lines))
		})
	}
}

func TestReporter_Init(t *testing.T) {
	tests := map[string]struct {
		config   Config
		wantFail bool
	}{
		"fails if binary path not set": {
			wantFail: true,
			config: func() Config {
				conf := New().Config
				conf.BinaryPath = ""
				return conf
			}(),
		},
		"fails if binary not found": {
			wantFail: true,
			config: func() Config {
				conf := New().Config
				conf.BinaryPath = "lcg-infosites!!!"
				return conf
			}(),
		},
		"fails if directory address not set": {
			wantFail: true,
			config: func() Config {
				conf := New().Config
				conf.BDII = ""
				return conf
			}(),
		},
		"fails if VO list is empty": {
			wantFail: true,
			config: func() Config {
				conf := New().Config
				conf.VOs = nil
				return conf
			}(),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := New()
			r.Config = test.config

			if test.wantFail {
				assert.Error(t, r.Init())
			} else {
				assert.NoError(t, r.Init())
			}
		})
	}
}

func TestReporter_Generate(t *testing.T) {
	tests := map[string]struct {
		vos         []string
		prepareMock func() *mockInfositesExec
		wantOut     string
	}{
		"one block per VO, SEs in parser order": {
			vos: []string{"ops", "cms"},
			prepareMock: func() *mockInfositesExec {
				return &mockInfositesExec{
					outputs: map[string]string{
						"ops": "avail: se1.example.org\navail: se2.example.org\n",
						"cms": "avail: se1.example.org\n",
					},
				}
			},
			wantOut: "\t* VO: ops\n" +
				"\t\tse1.example.org\n" +
				"\t\tse2.example.org\n" +
				"\t* VO: cms\n" +
				"\t\tse1.example.org\n",
		},
		"failed VO spoils only its own block": {
			vos: []string{"mis", "ops"},
			prepareMock: func() *mockInfositesExec {
				return &mockInfositesExec{
					outputs: map[string]string{"ops": "avail: se1.example.org\n"},
					errOn:   map[string]error{"mis": errors.New("mock exec error")},
				}
			},
			wantOut: "\t* VO: mis\n" +
				"\t\t(no data: query failure)\n" +
				"\t* VO: ops\n" +
				"\t\tse1.example.org\n",
		},
		"timed-out VO reported as timeout": {
			vos: []string{"atlas", "ops"},
			prepareMock: func() *mockInfositesExec {
				return &mockInfositesExec{
					outputs: map[string]string{"ops": "avail: se1.example.org\n"},
					errOn: map[string]error{
						"atlas": fmt.Errorf("mock: %w", context.DeadlineExceeded),
					},
				}
			},
			wantOut: "\t* VO: atlas\n" +
				"\t\t(no data: query timeout)\n" +
				"\t* VO: ops\n" +
				"\t\tse1.example.org\n",
		},
		"VO with empty output renders an empty block": {
			vos: []string{"ops"},
			prepareMock: func() *mockInfositesExec {
				return &mockInfositesExec{
					outputs: map[string]string{"ops": ""},
				}
			},
			wantOut: "\t* VO: ops\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := New()
			r.VOs = test.vos
			mock := test.prepareMock()
			r.exec = mock

			out, err := r.Generate(context.Background())

			require.NoError(t, err, "per-VO failures must not fail the report")
			assert.Equal(t, test.wantOut, out)
			assert.Equal(t, test.vos, mock.calls, "one query per VO, in order")
		})
	}
}

type mockInfositesExec struct {
	outputs map[string]string
	errOn   map[string]error

	calls []string
}

func (m *mockInfositesExec) listSEs(vo string) ([]byte, error) {
	m.calls = append(m.calls, vo)
	if err := m.errOn[vo]; err != nil {
		return nil, err
	}
	return []byte(m.outputs[vo]), nil
}
