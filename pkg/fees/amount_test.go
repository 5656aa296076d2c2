package fees_test

import (
	"testing"

	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "zero", input: "0", want: "0"},
		{name: "positive", input: "21000", want: "21000"},
		{name: "negative", input: "-42", want: "-42"},
		{name: "leading zeros", input: "000123", want: "123"},
		{name: "beyond 256 bits", input: "1157920892373161954235709850086879078532699846656405640394575840079131296399360", want: "1157920892373161954235709850086879078532699846656405640394575840079131296399360"},
		{name: "empty", input: "", wantErr: true},
		{name: "sign only", input: "-", wantErr: true},
		{name: "plus sign", input: "+5", wantErr: true},
		{name: "fraction", input: "1.5", wantErr: true},
		{name: "exponent", input: "1e18", wantErr: true},
		{name: "hex", input: "0x10", wantErr: true},
		{name: "whitespace", input: " 10", wantErr: true},
		{name: "underscore", input: "1_000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fees.ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	t.Run("compare", func(t *testing.T) {
		cmp, err := fees.Compare("100", "99")
		require.NoError(t, err)
		assert.Equal(t, 1, cmp)

		cmp, err = fees.Compare("99", "100")
		require.NoError(t, err)
		assert.Equal(t, -1, cmp)

		cmp, err = fees.Compare("1000000000000000000000", "1000000000000000000000")
		require.NoError(t, err)
		assert.Equal(t, 0, cmp)

		_, err = fees.Compare("abc", "1")
		assert.Error(t, err)
	})

	t.Run("add and subtract", func(t *testing.T) {
		sum, err := fees.Add("40000000001", "260000000000")
		require.NoError(t, err)
		assert.Equal(t, "300000000001", sum)

		diff, err := fees.Sub("2", "10")
		require.NoError(t, err)
		assert.Equal(t, "-8", diff)
	})

	t.Run("multiply large values", func(t *testing.T) {
		product, err := fees.Mul("123456789012345678901234567890", "1000000000000000000")
		require.NoError(t, err)
		assert.Equal(t, "123456789012345678901234567890000000000000000000", product)
	})

	t.Run("divide truncates toward zero", func(t *testing.T) {
		tests := []struct {
			a, b, want string
		}{
			{"7", "2", "3"},
			{"-7", "2", "-3"},
			{"7", "-2", "-3"},
			{"396000", "99000", "4"},
			{"791992", "99000", "7"},
			{"9", "10", "0"},
		}
		for _, tt := range tests {
			got, err := fees.Div(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "%s / %s", tt.a, tt.b)
		}
	})

	t.Run("divide by zero", func(t *testing.T) {
		_, err := fees.Div("1", "0")
		assert.Error(t, err)
	})

	t.Run("sign predicates", func(t *testing.T) {
		assert.True(t, fees.IsPositive("1"))
		assert.False(t, fees.IsPositive("0"))
		assert.False(t, fees.IsPositive("-1"))
		assert.False(t, fees.IsPositive(""))
		assert.True(t, fees.IsNonNegative("0"))
		assert.False(t, fees.IsNonNegative("-1"))
		assert.False(t, fees.IsNonNegative("1.0"))
	})
}
