package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search ingested resources", searchCmd.Short)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasFilterFlags(t *testing.T) {
	for _, name := range []string{"department", "subject", "uploaded-by", "json"} {
		assert.NotNil(t, searchCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "exam dates"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "exam dates", search.lastQ)
	assert.Contains(t, buf.String(), "Results:")
	assert.Contains(t, buf.String(), "Exam Guidelines")
	assert.Contains(t, buf.String(), "0.91")
}

func TestSearchCmd_ForwardsFilters(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-d", "Law", "-s", "Contracts", "exam dates"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchDepartment = ""
		searchSubject = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Law", search.filters.Department)
	assert.Equal(t, "Contracts", search.filters.Subject)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "exam dates"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"ResourceID\"")
	assert.Contains(t, buf.String(), "\"Score\"")
}

func TestSearchCmd_NoResults(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.hits = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "nothing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found.")
}
