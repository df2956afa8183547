package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereClauseEmpty(t *testing.T) {
	w := &where{}
	assert.Equal(t, "", w.clause())
	assert.Empty(t, w.args)
}

func TestWhereCombinesConditions(t *testing.T) {
	w := &where{}
	w.raw("NOT u.is_deleted")
	w.eq("u.id", "abc")
	w.ilike("u.first_name", "an")
	w.in("u.id", []string{"a", "b"})

	assert.Equal(t,
		" WHERE NOT u.is_deleted AND u.id = $1 AND u.first_name ILIKE $2 AND u.id = ANY($3)",
		w.clause())
	assert.Equal(t, []any{"abc", "%an%", []string{"a", "b"}}, w.args)
}

func TestLimitOffset(t *testing.T) {
	assert.Equal(t, "", limitOffset(1, 0), "no size means no limit")
	assert.Equal(t, "", limitOffset(3, -1))
	assert.Equal(t, " LIMIT 20 OFFSET 0", limitOffset(1, 20))
	assert.Equal(t, " LIMIT 20 OFFSET 40", limitOffset(3, 20))
	assert.Equal(t, " LIMIT 10 OFFSET 0", limitOffset(0, 10), "page defaults to 1")
}

func TestStrArg(t *testing.T) {
	p := strArg("x", true)
	if assert.NotNil(t, p) {
		assert.Equal(t, "x", *p)
	}
	assert.Nil(t, strArg("ignored", false))

	// Empty string present is a value, not absence.
	p = strArg("", true)
	if assert.NotNil(t, p) {
		assert.Equal(t, "", *p)
	}
}
