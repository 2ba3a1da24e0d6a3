package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "auth.db", "-x", "ignored"},
			allowed: []string{"-d"},
			want:    []string{"-d", "auth.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-d=x.db"},
			allowed: []string{"-d"},
			want:    []string{"-d=x.db"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-debug", "-d", "auth.db"},
			allowed: []string{"-debug"},
			want:    []string{"-debug"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: []string{},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"client", "-c", "conf.json", "-d", "auth.db"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"client", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"client"}
	assert.Equal(t, "", JsonConfigFlags())
}
