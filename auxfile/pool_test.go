// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegistersCommandsUpfront(t *testing.T) {
	p := NewPool()
	for name, tag := range map[string]int32{
		`\bibdata`:  CmdBibData,
		`\bibstyle`: CmdBibStyle,
		`\citation`: CmdCitation,
		`\@input`:   CmdInput,
	} {
		slot, ok := p.Lookup(KindAuxCommand, name)
		require.True(t, ok, name)
		assert.Equal(t, tag, slot.IlkInfo())
	}
}

func TestPoolNamespacesKindsIndependently(t *testing.T) {
	p := NewPool()
	_, existed := p.LookupOrInsert(KindBibFile, "foo")
	assert.False(t, existed)
	_, existed = p.LookupOrInsert(KindBstFile, "foo")
	assert.False(t, existed, "same text under a different Kind must not collide")
}

func TestPoolLookupOrInsertReturnsSameSlot(t *testing.T) {
	p := NewPool()
	a, existed := p.LookupOrInsert(KindCite, "knuth")
	require.False(t, existed)
	a.SetIlkInfo(7)

	b, existed := p.LookupOrInsert(KindCite, "knuth")
	require.True(t, existed)
	assert.Equal(t, int32(7), b.IlkInfo())
}

func TestPoolLookupWithoutInsertMisses(t *testing.T) {
	p := NewPool()
	_, ok := p.Lookup(KindCite, "nope")
	assert.False(t, ok)
}

// TestAlreadyStyleViaPool exercises the invariant cmdBibStyle's
// CodeAlreadyStyle guards: a style name that is already interned under
// KindBstFile when \bibstyle interns it. The guard is
// unreachable through Session's public command surface because bstSeen
// already rejects a second \bibstyle line first; this test instead
// confirms the Pool-level duplicate-detection it relies on.
func TestAlreadyStyleViaPool(t *testing.T) {
	p := NewPool()
	_, existed := p.LookupOrInsert(KindBstFile, "plain")
	require.False(t, existed)
	_, existed = p.LookupOrInsert(KindBstFile, "plain")
	assert.True(t, existed)
}
