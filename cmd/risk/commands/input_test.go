package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeights(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    map[string]float64
		wantErr bool
	}{
		{
			name: "basic",
			spec: "BTC=0.5,ETH=0.3,SOL=0.2",
			want: map[string]float64{"BTC": 0.5, "ETH": 0.3, "SOL": 0.2},
		},
		{
			name: "spaces tolerated",
			spec: " BTC = 0.6 , ETH = 0.4 ",
			want: map[string]float64{"BTC": 0.6, "ETH": 0.4},
		},
		{
			name:    "missing equals",
			spec:    "BTC0.5",
			wantErr: true,
		},
		{
			name:    "bad number",
			spec:    "BTC=half",
			wantErr: true,
		},
		{
			name:    "empty",
			spec:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeights(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "returns.json")
	require.NoError(t, os.WriteFile(path, []byte(`[0.01, -0.02, 0.005]`), 0o644))

	returns, err := loadReturns(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01, -0.02, 0.005}, returns)
}

func TestLoadReturns_Missing(t *testing.T) {
	_, err := loadReturns(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadAssetReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	content := `{"BTC": [0.01, -0.02], "ETH": [0.02, 0.01]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	assetReturns, err := loadAssetReturns(path)
	require.NoError(t, err)
	assert.Len(t, assetReturns, 2)
	assert.Equal(t, []float64{0.01, -0.02}, assetReturns["BTC"])
}
