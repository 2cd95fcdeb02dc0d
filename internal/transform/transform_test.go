package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldecon/gdp-cli/internal/model"
)

func TestBillions(t *testing.T) {
	records := []model.Record{
		{Country: "United States", GDPRaw: "26,854,599"},
		{Country: "Xland", GDPRaw: "12,345"},
		{Country: "Tuvalu", GDPRaw: "59"},
	}

	ds, err := Billions(records)
	require.NoError(t, err)
	require.Len(t, ds, 3)

	assert.Equal(t, model.TransformedRecord{Country: "United States", GDPBillions: 26854.6}, ds[0])
	assert.Equal(t, model.TransformedRecord{Country: "Xland", GDPBillions: 12.35}, ds[1])
	assert.Equal(t, model.TransformedRecord{Country: "Tuvalu", GDPBillions: 0.06}, ds[2])
}

func TestBillions_RoundsTiesAwayFromZero(t *testing.T) {
	// 12,345 / 1000 = 12.345 exactly; the tie rounds up to 12.35 rather
	// than to the even 12.34.
	ds, err := Billions([]model.Record{{Country: "Xland", GDPRaw: "12,345"}})
	require.NoError(t, err)
	assert.Equal(t, 12.35, ds[0].GDPBillions)

	ds, err = Billions([]model.Record{{Country: "Yland", GDPRaw: "12,335"}})
	require.NoError(t, err)
	assert.Equal(t, 12.34, ds[0].GDPBillions)
}

func TestBillions_TrimsWhitespace(t *testing.T) {
	ds, err := Billions([]model.Record{{Country: "Zland", GDPRaw: " 1,000\n"}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, ds[0].GDPBillions)
}

func TestBillions_NotNumeric(t *testing.T) {
	_, err := Billions([]model.Record{
		{Country: "Okland", GDPRaw: "2,000"},
		{Country: "Badland", GDPRaw: "N/A"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse gdp "N/A" for Badland`)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestBillions_Empty(t *testing.T) {
	ds, err := Billions(nil)
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestBillions_DoesNotModifyInput(t *testing.T) {
	records := []model.Record{{Country: "Xland", GDPRaw: "12,345"}}
	_, err := Billions(records)
	require.NoError(t, err)
	assert.Equal(t, "12,345", records[0].GDPRaw)
}
