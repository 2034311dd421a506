package minimax

import (
	"encoding/json"
	"strings"
)

type Options struct {
	// Use alpha-beta pruning, the returned scores are the same either way
	Pruning bool `json:"pruning"`
	// Number of goroutines evaluating the root moves
	NThreads int `json:"threads"`
}

func DefaultOptions() *Options {
	return &Options{
		Pruning:  true,
		NThreads: 1,
	}
}

func (o Options) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(o)
	return strings.TrimSpace(builder.String())
}

// Enable or disable alpha-beta pruning
func (o *Options) SetPruning(pruning bool) *Options {
	o.Pruning = pruning
	return o
}

func (o *Options) SetThreads(threads int) *Options {
	o.NThreads = max(threads, 1)
	return o
}
