package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJSON(t *testing.T) {
	client := newFakeAppClient()
	c := NewListCmd(client)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--catalog", "projects.toml", "--format", "json"})

	require.NoError(t, c.Execute())

	var items []catalog.Item
	require.NoError(t, json.Unmarshal(out.Bytes(), &items))
	assert.Len(t, items, client.items.Len())
	assert.Equal(t, []string{"projects.toml"}, client.catalogPaths)
}

func TestListTable(t *testing.T) {
	client := newFakeAppClient()
	c := NewListCmd(client)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--catalog", "projects.toml"})

	require.NoError(t, c.Execute())

	first, _ := client.items.At(0)
	assert.Contains(t, out.String(), "TITLE")
	assert.Contains(t, out.String(), first.ID)
}

func TestListRejectsUnknownFormat(t *testing.T) {
	c := NewListCmd(newFakeAppClient())
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--format", "xml"})

	assert.ErrorIs(t, c.Execute(), format.ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	client := newFakeAppClient()
	c := NewValidateCmd(client)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"projects.toml"})

	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "no problems")
	assert.Equal(t, []string{"projects.toml"}, client.catalogPaths)
}

func TestValidateReportsProblems(t *testing.T) {
	client := newFakeAppClient()
	client.items = catalog.New("broken.toml", []catalog.Item{
		{ID: "a", Title: "Alpha"},
		{ID: "a", Title: "Again"},
		{ID: "b"},
	})
	c := NewValidateCmd(client)
	var stderr bytes.Buffer
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&stderr)
	c.SetArgs([]string{"broken.toml"})

	err := c.Execute()

	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "2 found")
	assert.Contains(t, stderr.String(), "duplicate id")
	assert.Contains(t, stderr.String(), "missing title")
}
