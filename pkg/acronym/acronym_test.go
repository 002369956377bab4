package acronym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsCommonAcronyms(t *testing.T) {
	s := Default()
	assert.True(t, s.Contains("http"))
	assert.True(t, s.Contains("API"))
	assert.False(t, s.Contains("notanacronym"))
}

func TestAdd_PreservesCanonicalCasing(t *testing.T) {
	s := New()
	s.Add("OAuth")
	assert.Equal(t, "OAuth", s.Canonical("oauth"))
	assert.Equal(t, "OAuth", s.Canonical("OAUTH"))
}

func TestRemove_DropsAcronym(t *testing.T) {
	s := Default()
	require.True(t, s.Contains("HTTP"))
	s.Remove("http")
	assert.False(t, s.Contains("HTTP"))
}

func TestReplace_ClearsPriorEntries(t *testing.T) {
	s := Default()
	s.Replace([]string{"ZIP"})
	assert.True(t, s.Contains("zip"))
	assert.False(t, s.Contains("HTTP"))
}

func TestLongestMatch_PrefersLongerAcronym(t *testing.T) {
	s := New()
	s.Add("ID")
	s.Add("UUID")
	length, ok := s.LongestMatch("UUIDSuffix")
	require.True(t, ok)
	assert.Equal(t, 4, length)
}

func TestLongestMatch_NoMatch(t *testing.T) {
	s := New()
	s.Add("ID")
	_, ok := s.LongestMatch("banana")
	assert.False(t, ok)
}
