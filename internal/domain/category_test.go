package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmicalc/internal/domain"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want domain.Category
	}{
		{math.Inf(-1), domain.CategoryUnderweight},
		{0, domain.CategoryUnderweight},
		{18.49, domain.CategoryUnderweight},
		{18.5, domain.CategoryNormal},
		{24.99, domain.CategoryNormal},
		{25.0, domain.CategoryOverweight},
		{29.99, domain.CategoryOverweight},
		{30.0, domain.CategoryObese},
		{math.Inf(1), domain.CategoryObese},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.Classify(tc.bmi), "Classify(%v)", tc.bmi)
	}
}

func TestClassify_Partition(t *testing.T) {
	cats := domain.Categories()
	for b := -5.0; b < 60; b += 0.01 {
		matches := 0
		lower := math.Inf(-1)
		for _, row := range cats {
			if b >= lower && b < row.Upper {
				matches++
				assert.Equal(t, row.Category, domain.Classify(b), "bmi %v", b)
			}
			lower = row.Upper
		}
		require.Equal(t, 1, matches, "bmi %v", b)
	}
}

func TestCategory_HealthyOnlyForNormal(t *testing.T) {
	for _, row := range domain.Categories() {
		assert.Equal(t, row.Category == domain.CategoryNormal, row.Category.Healthy(), row.Label)
	}
}

func TestCategory_Table(t *testing.T) {
	assert.Equal(t, "Normal Weight", domain.CategoryNormal.Label())
	assert.Equal(t, "Obese", domain.CategoryObese.String())
	assert.Equal(t, domain.SeverityDanger, domain.CategoryObese.Severity())
	assert.Equal(t, domain.SeverityWarning, domain.CategoryUnderweight.Severity())
	assert.Equal(t, domain.SeverityHealthy, domain.CategoryNormal.Severity())
	assert.Contains(t, domain.CategoryOverweight.Recommendation(), "balanced diet")
	assert.Equal(t, domain.CategoryInfo{}, domain.Category(0).Info())
}

func TestCategory_Text(t *testing.T) {
	b, err := json.Marshal(map[string]domain.Category{"c": domain.CategoryOverweight})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"overweight"}`, string(b))

	var c domain.Category
	require.NoError(t, c.UnmarshalText([]byte("OBESE")))
	assert.Equal(t, domain.CategoryObese, c)

	_, err = domain.ParseCategory("chubby")
	assert.Error(t, err)

	_, err = domain.Category(0).MarshalText()
	assert.Error(t, err)
}
