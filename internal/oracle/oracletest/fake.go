// Package oracletest provides a scripted oracle for tests.
package oracletest

import (
	"context"
	"sync"

	"github.com/saulo-duarte/persona-quiz/internal/oracle"
)

// Reply is one scripted oracle answer.
type Reply struct {
	Text string
	Err  error
}

// Fake replays Replies in order and repeats the last one once the script
// runs out. It records every call.
type Fake struct {
	mu      sync.Mutex
	Replies []Reply
	prompts []string
	params  []oracle.Params
}

var _ oracle.Client = (*Fake)(nil)

func Always(text string) *Fake {
	return &Fake{Replies: []Reply{{Text: text}}}
}

func Sequence(texts ...string) *Fake {
	f := &Fake{}
	for _, t := range texts {
		f.Replies = append(f.Replies, Reply{Text: t})
	}
	return f
}

func Failing(err error) *Fake {
	return &Fake{Replies: []Reply{{Err: err}}}
}

func (f *Fake) Generate(ctx context.Context, prompt string, params oracle.Params) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	f.params = append(f.params, params)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(f.Replies) == 0 {
		return "", nil
	}
	if call >= len(f.Replies) {
		call = len(f.Replies) - 1
	}
	r := f.Replies[call]
	return r.Text, r.Err
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *Fake) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func (f *Fake) Params() []oracle.Params {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]oracle.Params(nil), f.params...)
}
