package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetLowercasesAndKeepsPosition(t *testing.T) {
	tbl := NewTable()
	assert.False(t, tbl.Set(Entry{Word: "Cache", Meaning: "first"}))
	assert.False(t, tbl.Set(Entry{Word: "latency", Meaning: "delay"}))
	assert.True(t, tbl.Set(Entry{Word: "CACHE", Meaning: "second"}))

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"cache", "latency"}, tbl.Words())

	e, ok := tbl.Get("cAcHe")
	require.True(t, ok)
	assert.Equal(t, Entry{Word: "cache", Meaning: "second"}, e)
}

func TestTable_Merge(t *testing.T) {
	a := NewTable()
	a.Set(Entry{Word: "cache", Meaning: "A"})
	b := NewTable()
	b.Set(Entry{Word: "queue", Meaning: "Q"})
	b.Set(Entry{Word: "cache", Meaning: "A"})

	a.Merge(b)
	assert.Equal(t, []string{"cache", "queue"}, a.Words())

	a.Merge(nil)
	assert.Equal(t, 2, a.Len())
}

func TestTable_EntriesIsCopy(t *testing.T) {
	tbl := NewTable()
	tbl.Set(Entry{Word: "cache", Meaning: "A"})
	entries := tbl.Entries()
	entries[0].Meaning = "changed"

	e, _ := tbl.Get("cache")
	assert.Equal(t, "A", e.Meaning)
}

func TestTable_NilLen(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
	assert.Nil(t, tbl.Entries())
}
