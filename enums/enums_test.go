package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsAnyOrdering(t *testing.T) {
	orderings := [][]Member{
		{{"a", 0}, {"b", 1}, {"c", 2}},
		{{"c", 2}, {"a", 0}, {"b", 1}},
		{{"b", 1}, {"c", 2}, {"a", 0}},
		{{"c", 2}, {"b", 1}, {"a", 0}},
	}
	for _, members := range orderings {
		assert.NoError(t, Validate("Codes", members))
	}
}

func TestValidateSingleMember(t *testing.T) {
	assert.NoError(t, Validate("Codes", []Member{{"only", 0}}))
}

func TestValidateBadStart(t *testing.T) {
	err := Validate("Codes", []Member{{"a", 1}, {"b", 2}, {"c", 3}})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, BadStart, verr.Kind)
	assert.Equal(t, "Codes", verr.Enum)
	assert.Equal(t, "Bad starting value (should be zero): 1", err.Error())
}

func TestValidateBadStartNegative(t *testing.T) {
	err := Validate("Codes", []Member{{"a", -2}, {"b", 0}, {"c", 1}})
	require.Error(t, err)
	assert.Equal(t, "Bad starting value (should be zero): -2", err.Error())
}

func TestValidateBadStartIsExclusive(t *testing.T) {
	// Duplicates and gaps are both present, but a non-zero minimum is
	// reported alone.
	err := Validate("Codes", []Member{{"a", 1}, {"b", 1}, {"c", 9}})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, BadStart, verr.Kind)
}

func TestValidateDuplicates(t *testing.T) {
	err := Validate("Codes", []Member{{"a", 0}, {"b", 1}, {"alias", 0}})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, Duplicate, verr.Kind)
	assert.Equal(t, "Duplicate values found in Codes: alias -> a", err.Error())
}

func TestValidateDuplicatesReportedTogether(t *testing.T) {
	err := Validate("Codes", []Member{
		{"a", 0}, {"b", 1}, {"alias1", 0}, {"alias2", 1},
	})
	require.Error(t, err)
	assert.Equal(t,
		"Duplicate values found in Codes: alias1 -> a, alias2 -> b",
		err.Error())
}

func TestValidateDuplicatesSuppressGaps(t *testing.T) {
	// Both a duplicate and a gap exist; only the duplicate is reported.
	err := Validate("Codes", []Member{{"a", 0}, {"b", 0}, {"c", 9}})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, Duplicate, verr.Kind)
	assert.NotContains(t, err.Error(), "Non-consecutive")
}

func TestValidateGap(t *testing.T) {
	err := Validate("Codes", []Member{{"a", 0}, {"b", 1}, {"c", 9}})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, Gap, verr.Kind)
	assert.Equal(t, "Non-consecutive values found in Codes: c: 9", err.Error())
}

func TestValidateGapReportsDefinitionOrder(t *testing.T) {
	err := Validate("Codes", []Member{{"d", 9}, {"a", 0}, {"e", 7}, {"b", 1}})
	require.Error(t, err)
	assert.Equal(t,
		"Non-consecutive values found in Codes: d: 9, e: 7",
		err.Error())
}

func TestValidateEmpty(t *testing.T) {
	err := Validate("Codes", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Codes")
}

func TestNewAndIntrospection(t *testing.T) {
	e, err := New("Codes",
		Member{"clean", 0},
		Member{"badCommand", 1},
		Member{"badFolder", 2},
	)
	require.NoError(t, err)

	assert.Equal(t, "Codes", e.Name())
	assert.Equal(t, []string{"clean", "badCommand", "badFolder"}, e.Names())
	assert.Equal(t, []int{0, 1, 2}, e.Values())
	assert.Equal(t, 3, e.NumValues())
	assert.Equal(t, 0, e.MinValue())
	assert.Equal(t, 2, e.MaxValue())

	v, err := e.Value("badFolder")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestEnumValueMissing(t *testing.T) {
	e := MustNew("Codes", Member{"clean", 0})
	_, err := e.Value("nope")
	require.Error(t, err)
	assert.Equal(t, `"Codes" does not have an attribute of "nope"`, err.Error())
}

func TestEnumString(t *testing.T) {
	e := MustNew("Codes", Member{"clean", 0}, Member{"badCommand", 1})
	assert.Equal(t, "Codes.clean: 0\nCodes.badCommand: 1", e.String())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew("Broken", Member{"a", 1})
	})
}

func TestReturnCodesDescriptor(t *testing.T) {
	assert.Equal(t, 7, ReturnCodes.NumValues())
	assert.Equal(t, 0, ReturnCodes.MinValue())
	assert.Equal(t, 6, ReturnCodes.MaxValue())

	v, err := ReturnCodes.Value("BadCommand")
	require.NoError(t, err)
	assert.Equal(t, int(ReturnBadCommand), v)
}
