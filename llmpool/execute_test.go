package llmpool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/analysis"
	"github.com/docweave/docweave/llmclient"
)

type echo struct {
	OK bool `json:"ok"`
}

func TestExecuteFailsOverToNextClient(t *testing.T) {
	bad := &stubTransport{err: llmclient.FromErrorString("model refused")}
	good := &stubTransport{reply: `{"ok": true}`}

	a := newPoolClient(t, "key-a", bad)
	b := newPoolClient(t, "key-b", good)
	p, err := NewBuilder().
		WithBehavior(BehaviorFailover).
		AddClient(a, 1).
		AddClient(b, 2).
		Build()
	require.NoError(t, err)

	got, err := Execute[echo](context.Background(), p, "sys", "user")
	require.NoError(t, err)
	assert.True(t, got.OK)

	assert.Equal(t, 1, bad.callCount())
	assert.Equal(t, 1, good.callCount())

	// The failed client is benched, the winner is healthy.
	assert.False(t, p.Member(a.ID()).Available(time.Now()))
	assert.True(t, p.Member(b.ID()).Available(time.Now()))
}

func TestExecuteDistributeMakesSingleAttempt(t *testing.T) {
	bad1 := &stubTransport{err: llmclient.FromErrorString("model refused")}
	bad2 := &stubTransport{err: llmclient.FromErrorString("model refused")}

	p, err := NewBuilder().
		WithBehavior(BehaviorDistribute).
		AddClient(newPoolClient(t, "key-a", bad1), 1).
		AddClient(newPoolClient(t, "key-b", bad2), 1).
		Build()
	require.NoError(t, err)

	_, err = Execute[echo](context.Background(), p, "sys", "user")
	require.Error(t, err)
	assert.Equal(t, 1, bad1.callCount()+bad2.callCount())
}

func TestExecuteReportsLastErrorWhenAllFail(t *testing.T) {
	bad := &stubTransport{err: llmclient.FromErrorString("model refused")}

	p, err := NewBuilder().
		WithBehavior(BehaviorFailover).
		AddClient(newPoolClient(t, "key-a", bad), 1).
		AddClient(newPoolClient(t, "key-b", bad), 2).
		Build()
	require.NoError(t, err)

	_, err = Execute[echo](context.Background(), p, "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all pool clients failed")

	var chat *llmclient.ChatError
	assert.ErrorAs(t, err, &chat)
}

func TestExecuteSuccessClearsFailureState(t *testing.T) {
	good := &stubTransport{reply: `{"ok": true}`}
	a := newPoolClient(t, "key-a", good)

	p, err := NewBuilder().WithBehavior(BehaviorFailover).AddClient(a, 1).Build()
	require.NoError(t, err)

	p.MarkFailure(a.ID())
	_, err = Execute[echo](context.Background(), p, "sys", "user")
	require.NoError(t, err)

	assert.True(t, p.Member(a.ID()).Available(time.Now()))
}

func TestExecuteSimple(t *testing.T) {
	p, _ := buildPool(t, BehaviorFailover, 1)

	got, err := ExecuteSimple(context.Background(), p, "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestPoolAnalyzeFile(t *testing.T) {
	tr := &stubTransport{reply: `{"file_path": "main.go", "file_type": "go", "summary": "entry point"}`}
	p, err := NewBuilder().
		WithBehavior(BehaviorFailover).
		AddClient(newPoolClient(t, "key-a", tr), 1).
		Build()
	require.NoError(t, err)

	got, err := p.AnalyzeFile(context.Background(), "main.go", "package main", analysis.DefaultContext())
	require.NoError(t, err)
	assert.Equal(t, "main.go", got.FilePath)
	assert.Equal(t, "entry point", got.Summary)
}

func TestPoolAnalyzeDirectory(t *testing.T) {
	tr := &stubTransport{reply: `{"directory_path": "internal", "summary": "core logic"}`}
	p, err := NewBuilder().
		WithBehavior(BehaviorFailover).
		AddClient(newPoolClient(t, "key-a", tr), 1).
		Build()
	require.NoError(t, err)

	children := []analysis.ChildAnalysis{
		{File: &analysis.FileAnalysis{FilePath: "internal/a.go", Summary: "helper"}},
	}
	got, err := p.AnalyzeDirectory(context.Background(), "internal", children, analysis.DefaultContext())
	require.NoError(t, err)
	assert.Equal(t, "internal", got.DirectoryPath)
}
