// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLineReader(name, text string) *LineReader {
	return NewLineReader(name, io.NopCloser(strings.NewReader(text)))
}

func TestAuxStackPushUpToMaxDepthSucceeds(t *testing.T) {
	var s AuxStack
	s.Init("base", newTestLineReader("base", ""))
	for i := 0; i < MaxAuxDepth; i++ {
		require.True(t, s.Push(), "push %d should succeed", i+1)
		s.SetFrame("f", newTestLineReader("f", ""))
	}
	assert.Equal(t, MaxAuxDepth, s.Ptr())
}

func TestAuxStackPushBeyondMaxDepthFails(t *testing.T) {
	var s AuxStack
	s.Init("base", newTestLineReader("base", ""))
	for i := 0; i < MaxAuxDepth; i++ {
		require.True(t, s.Push())
		s.SetFrame("f", newTestLineReader("f", ""))
	}
	assert.False(t, s.Push())
	assert.Equal(t, MaxAuxDepth, s.Ptr(), "a failed push must not move ptr")
}

func TestAuxStackCancelPushRestoresPtr(t *testing.T) {
	var s AuxStack
	s.Init("base", newTestLineReader("base", ""))
	require.True(t, s.Push())
	s.CancelPush()
	assert.Equal(t, 0, s.Ptr())
}

func TestAuxStackPopExhaustsAtBase(t *testing.T) {
	var s AuxStack
	s.Init("base", newTestLineReader("base", ""))
	require.True(t, s.Push())
	s.SetFrame("child", newTestLineReader("child", ""))

	exhausted := s.Pop()
	assert.False(t, exhausted)
	assert.Equal(t, 0, s.Ptr())

	exhausted = s.Pop()
	assert.True(t, exhausted)
}

func TestAuxStackLineSurvivesAfterPop(t *testing.T) {
	var s AuxStack
	lr := newTestLineReader("base", "one\ntwo\n")
	s.Init("base", lr)
	_, _ = lr.Next()
	_, _ = lr.Next()
	assert.Equal(t, 2, s.Line())

	exhausted := s.Pop()
	assert.True(t, exhausted)
	assert.Equal(t, 2, s.Line(), "line count must stay readable after Pop closes the frame")
}
