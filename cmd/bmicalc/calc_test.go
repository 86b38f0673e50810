package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmicalc/internal/app"
	"bmicalc/internal/config"
)

func TestRunCalc_Summary(t *testing.T) {
	var buf bytes.Buffer
	err := runCalc(&buf, app.Input{Weight: 70, Height: 175, Age: 30, Gender: "male"}, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BMI: 22.86")
	assert.Contains(t, out, "Category: Normal Weight")
	assert.Contains(t, out, "Ideal Weight Range: 56.7 - 76.3 kg")
}

func TestRunCalc_JSON(t *testing.T) {
	var buf bytes.Buffer
	in := app.Input{Weight: 154.32, WeightUnit: "lb", Height: 68.9, HeightUnit: "in", Age: 30, Gender: "female"}
	require.NoError(t, runCalc(&buf, in, true))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "normal", got["category"])
	assert.Equal(t, "Healthy", got["status"])
}

func TestRunCalc_Invalid(t *testing.T) {
	var buf bytes.Buffer
	err := runCalc(&buf, app.Input{Weight: 70, Height: 175, Age: 0, Gender: "male"}, false)
	assert.ErrorIs(t, err, app.ErrValidation)
	assert.Empty(t, buf.String())
}

func TestCalcCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"calc", "--weight", "45", "--height", "160", "--age", "22", "--gender", "female"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Category: Underweight")
}

func TestOpenStores_Memory(t *testing.T) {
	st, err := openStores(config.Config{Store: config.StoreMemory})
	require.NoError(t, err)
	assert.NotNil(t, st.assessments)
	assert.NotNil(t, st.users)
	assert.NotNil(t, st.sessions)
	assert.NoError(t, st.close())
}
