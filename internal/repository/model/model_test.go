package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Grant(t *testing.T) {
	doc := Document{}

	doc.Grant("T1", "U1", []string{"meme"})

	expected := Document{
		"T1": {Users: map[string]*User{
			"U1": {Permissions: []string{"meme"}},
		}},
	}
	assert.Equal(t, expected, doc)

	// Repeated grants append without deduplication.
	doc.Grant("T1", "U1", []string{"meme", "ban"})
	assert.Equal(t, []string{"meme", "meme", "ban"}, doc["T1"].Users["U1"].Permissions)
}

func TestDocument_UserPermissions(t *testing.T) {
	doc := Document{
		"T1": {Users: map[string]*User{
			"U1": {Permissions: []string{"meme", "ban"}},
		}},
	}

	permissions, ok := doc.UserPermissions("T1", "U1")
	assert.True(t, ok)
	assert.Equal(t, []string{"meme", "ban"}, permissions)

	_, ok = doc.UserPermissions("T1", "U2")
	assert.False(t, ok)

	_, ok = doc.UserPermissions("T2", "U1")
	assert.False(t, ok)
}

func TestDocument_Revoke(t *testing.T) {
	doc := Document{
		"T1": {Users: map[string]*User{
			"U1": {Permissions: []string{"meme", "ban"}},
			"U2": {Permissions: []string{"meme"}},
		}},
	}

	found, changed := doc.Revoke("T1", "U1", []string{"ban"})
	assert.True(t, found)
	assert.True(t, changed)
	assert.Equal(t, []string{"meme"}, doc["T1"].Users["U1"].Permissions)

	// Revoking a command the user never held still succeeds and leaves the
	// rest of their permissions intact.
	found, changed = doc.Revoke("T1", "U1", []string{"kick"})
	assert.True(t, found)
	assert.True(t, changed)
	assert.Equal(t, []string{"meme"}, doc["T1"].Users["U1"].Permissions)

	// Removing the last command prunes the user record.
	found, changed = doc.Revoke("T1", "U1", []string{"meme"})
	assert.True(t, found)
	assert.True(t, changed)
	assert.NotContains(t, doc["T1"].Users, "U1")
	assert.Contains(t, doc["T1"].Users, "U2")

	// Pruning the last user cascades to the thread record.
	found, changed = doc.Revoke("T1", "U2", []string{"meme"})
	assert.True(t, found)
	assert.True(t, changed)
	assert.Equal(t, Document{}, doc)
}

func TestDocument_RevokeAbsent(t *testing.T) {
	doc := Document{
		"T1": {Users: map[string]*User{
			"U1": {Permissions: []string{"meme"}},
		}},
	}

	found, _ := doc.Revoke("T2", "U1", []string{"meme"})
	assert.False(t, found)

	found, _ = doc.Revoke("T1", "U2", []string{"meme"})
	assert.False(t, found)

	// An empty (but present) permission list counts as found but unchanged.
	doc["T1"].Users["U2"] = &User{Permissions: []string{}}
	found, changed := doc.Revoke("T1", "U2", []string{"meme"})
	assert.True(t, found)
	assert.False(t, changed)
}
