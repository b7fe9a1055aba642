package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func TestCheckAcceptsMatchingDepth(t *testing.T) {
	valid := map[string]*int{
		"foo":              intPtr(0),
		"foo.bar":          intPtr(1),
		"foo.bar.baz":      intPtr(2),
		"_foo._bar":        intPtr(1),
		"foo2.bar_baz":     intPtr(1),
		"anything.at.all":  nil,
		"single":           nil,
		"a.b.c.d.e.f":      nil, // exactly five dots
		"pkg_1.pkg_2.v1x2": intPtr(2),
	}
	for candidate, ndots := range valid {
		assert.NoError(t, Check(ndots, candidate), "name %q", candidate)
	}
}

func TestCheckDepthMismatch(t *testing.T) {
	mismatched := map[string]*int{
		"foo":         intPtr(1),
		"foo.bar":     intPtr(0),
		"foo.bar.baz": intPtr(1),
	}
	for candidate, ndots := range mismatched {
		var invalidErr InvalidNameError
		err := Check(ndots, candidate)
		require.ErrorAs(t, err, &invalidErr, "name %q", candidate)
		assert.Equal(t, candidate, invalidErr.Name)
	}
}

func TestCheckDepthCeiling(t *testing.T) {
	// More than five dots is rejected no matter what the template asks for.
	candidate := "a.b.c.d.e.f.g"
	for _, ndots := range []*int{nil, intPtr(6)} {
		var invalidErr InvalidNameError
		err := Check(ndots, candidate)
		require.ErrorAs(t, err, &invalidErr)
	}
}

func TestCheckBadIdentifiers(t *testing.T) {
	bad := []string{
		"foo..bar",
		".foo",
		"foo.",
		"1foo.bar",
		"foo.2bar",
		"foo-bar.baz",
		"foo.bar baz",
		"",
	}
	for _, candidate := range bad {
		var invalidErr InvalidNameError
		err := Check(nil, candidate)
		require.ErrorAs(t, err, &invalidErr, "name %q", candidate)
	}
}

func TestCheckNamesOffendingSegment(t *testing.T) {
	err := Check(intPtr(2), "foo..bar")
	var invalidErr InvalidNameError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Reason, "''")

	err = Check(intPtr(1), "foo.2bar")
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Reason, "'2bar'")
}
