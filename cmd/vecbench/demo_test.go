package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	res, err := scenarios()
	require.NoError(t, err)
	require.Len(t, res, 4)

	assert.Equal(t, []float64{0, 123, 5, 5, 5, 5}, res[0].Values)
	assert.Equal(t, 6, res[0].Len)
	require.NotNil(t, res[0].Cursor)
	assert.Equal(t, 1, *res[0].Cursor)

	assert.Equal(t, []float64{1, 2, 3}, res[1].Values)
	assert.Equal(t, []int{0, 2, 4}, res[1].Capacities)
	assert.Equal(t, 4, res[1].Capacity)

	assert.Equal(t, []float64{1, 2, 0.03333}, res[2].Values)
	assert.Equal(t, 3, res[2].Len)
	assert.Equal(t, 4, res[2].Capacity, "shorter assignment keeps the storage")

	assert.Equal(t, []float64{0.666, 1.666, 4.666, 5.666}, res[3].Values)
}

func TestFractionalNear(t *testing.T) {
	assert.True(t, fractionalNear(0.666))
	assert.True(t, fractionalNear(5.666))
	assert.False(t, fractionalNear(2.1))
	assert.False(t, fractionalNear(6.123))
}

func TestRunDemo_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	out, err := captureOutput(t, runDemo)
	require.NoError(t, err)

	var got []Scenario
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "copy-if", got[3].Name)
	assert.Equal(t, []int{0, 2, 4}, got[1].Capacities)
}

func TestRunDemo_Text(t *testing.T) {
	resetFlags(t)
	noColor = true

	out, err := captureOutput(t, runDemo)
	require.NoError(t, err)
	assert.Contains(t, out, "insert  [0 123 5 5 5 5] len=6 cap=10 cursor=1")
	assert.Contains(t, out, "push    [1 2 3] len=3 cap=4 capacities=[0 2 4]")
	assert.Contains(t, out, "assign  [1 2 0.03333] len=3 cap=4")
	assert.Contains(t, out, "copy-if [0.666 1.666 4.666 5.666] len=4 cap=4")
}

func TestRunDemo_Quiet(t *testing.T) {
	resetFlags(t)
	quiet = true

	out, err := captureOutput(t, runDemo)
	require.NoError(t, err)
	assert.Empty(t, out)
}
