package quotes

import (
	"testing"
	"time"

	"github.com/devisio-app/devisio-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func int64Ptr(i int64) *int64       { return &i }
func floatPtr(f float64) *float64   { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func baseRow() quoteJoinRow {
	return quoteJoinRow{
		QuoteID:        10,
		UserID:         1,
		GlobalDiscount: 5,
		Name:           strPtr("Salle de bain"),
		Status:         "draft",
		CreatedAt:      time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildDetailEmpty(t *testing.T) {
	assert.Nil(t, buildDetail(nil))
	assert.Nil(t, buildDetail([]quoteJoinRow{}))
}

func TestBuildDetailQuoteOnly(t *testing.T) {
	detail := buildDetail([]quoteJoinRow{baseRow()})
	require.NotNil(t, detail)
	assert.Equal(t, int64(10), detail.ID)
	assert.Equal(t, enums.QuoteStatusDraft, detail.Status)
	assert.Nil(t, detail.Customer)
	assert.Empty(t, detail.Elements)
	assert.Empty(t, detail.Medias)
}

func TestBuildDetailCollapsesCrossProduct(t *testing.T) {
	// 2 elements x 2 medias joined against one quote yields 4 rows.
	var rows []quoteJoinRow
	for _, elementID := range []int64{101, 102} {
		for _, mediaID := range []int64{201, 202} {
			row := baseRow()
			row.CustomerID = int64Ptr(7)
			row.FirstName = strPtr("Jean")
			row.ElementID = int64Ptr(elementID)
			row.WorkID = int64Ptr(31)
			row.QuoteSection = strPtr("Plomberie")
			row.VAT = strPtr("10")
			row.Discount = floatPtr(2.5)
			row.Quantity = intPtr(int(elementID - 100))
			row.MediaID = int64Ptr(mediaID)
			row.PathName = strPtr("plan.png")
			rows = append(rows, row)
		}
	}

	detail := buildDetail(rows)
	require.NotNil(t, detail)

	require.NotNil(t, detail.Customer)
	assert.Equal(t, int64(7), detail.Customer.ID)
	assert.Equal(t, "Jean", *detail.Customer.FirstName)

	require.Len(t, detail.Elements, 2)
	assert.Equal(t, int64(101), detail.Elements[0].ID)
	assert.Equal(t, int64(102), detail.Elements[1].ID)
	assert.Equal(t, enums.VATRateIntermediate, detail.Elements[0].VAT)
	assert.Equal(t, 1, detail.Elements[0].Quantity)
	assert.Equal(t, 2, detail.Elements[1].Quantity)

	require.Len(t, detail.Medias, 2)
	assert.Equal(t, int64(201), detail.Medias[0].ID)
	assert.Equal(t, int64(202), detail.Medias[1].ID)
}

func TestBuildDetailKeepsFirstOccurrenceOrder(t *testing.T) {
	first := baseRow()
	first.ElementID = int64Ptr(300)
	second := baseRow()
	second.ElementID = int64Ptr(100)
	duplicate := baseRow()
	duplicate.ElementID = int64Ptr(300)

	detail := buildDetail([]quoteJoinRow{first, second, duplicate})
	require.NotNil(t, detail)
	require.Len(t, detail.Elements, 2)
	assert.Equal(t, int64(300), detail.Elements[0].ID)
	assert.Equal(t, int64(100), detail.Elements[1].ID)
}

func TestBuildDetailExpiry(t *testing.T) {
	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	row := baseRow()
	row.ExpiresAt = timePtr(expiry)

	detail := buildDetail([]quoteJoinRow{row})
	require.NotNil(t, detail)
	require.NotNil(t, detail.ExpiresAt)
	assert.True(t, expiry.Equal(*detail.ExpiresAt))
}
