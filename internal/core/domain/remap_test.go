package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccsysroot/internal/core/domain"
)

func TestRemapTable_IsImmutable(t *testing.T) {
	source := map[string][]domain.Replacement{
		"qt5": {domain.Literal("/usr/include/qt5")},
	}
	table := domain.NewRemapTable(source)

	source["qt5"][0] = domain.Literal("/changed")
	source["boost"] = []domain.Replacement{domain.UnderSysroot()}

	got, ok := table.Lookup("qt5")
	require.True(t, ok)
	assert.Equal(t, []domain.Replacement{domain.Literal("/usr/include/qt5")}, got)

	got[0] = domain.Literal("/mutated")
	again, _ := table.Lookup("qt5")
	assert.Equal(t, "/usr/include/qt5", again[0].Path)

	_, ok = table.Lookup("boost")
	assert.False(t, ok)
	assert.Equal(t, 1, table.Len())
}

func TestReplacement_IsUnderSysroot(t *testing.T) {
	assert.True(t, domain.UnderSysroot().IsUnderSysroot())
	assert.True(t, domain.Replacement{}.IsUnderSysroot())
	assert.False(t, domain.Literal("/usr/include").IsUnderSysroot())
}

func TestRewriteRules_WithKeep(t *testing.T) {
	rules := domain.DefaultRewriteRules()
	assert.Equal(t, []string{domain.DefaultKeepPrefix}, rules.Keep)

	same := rules.WithKeep(nil)
	assert.Equal(t, rules.Keep, same.Keep)

	replaced := rules.WithKeep([]string{"/work"})
	assert.Equal(t, []string{"/work"}, replaced.Keep)
	assert.Equal(t, []string{domain.DefaultKeepPrefix}, rules.Keep)
}

func TestDefaultRewriteRules_Table(t *testing.T) {
	table := domain.DefaultRewriteRules().Table

	assert.Contains(t, table.Names(), "include")
	assert.IsNonDecreasing(t, table.Names())

	qt, ok := table.Lookup("qt5")
	require.True(t, ok)
	assert.Len(t, qt, 2)

	_, ok = table.Lookup("foo")
	assert.False(t, ok)
}
