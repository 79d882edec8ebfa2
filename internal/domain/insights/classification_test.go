package insights

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesTotals(quantity int64, value float64) ProductSalesTotals {
	return ProductSalesTotals{
		Quantity: decimal.NewFromInt(quantity),
		Value:    decimal.NewFromFloat(value),
	}
}

func TestBuildClassification_EmptySalesIsNoOp(t *testing.T) {
	rows := BuildClassification(uuid.New(), map[uuid.UUID]ProductSalesTotals{}, nil, time.Now())
	assert.Nil(t, rows)
}

func TestBuildClassification_ParticipationSumsToHundred(t *testing.T) {
	tenantID := uuid.New()
	sales := map[uuid.UUID]ProductSalesTotals{
		uuid.New(): salesTotals(10, 1234.56),
		uuid.New(): salesTotals(5, 789.01),
		uuid.New(): salesTotals(80, 55.5),
		uuid.New(): salesTotals(2, 3000),
	}

	rows := BuildClassification(tenantID, sales, nil, time.Now())
	require.Len(t, rows, 4)

	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.ParticipationPct)
	}
	sumFloat, _ := sum.Float64()
	assert.InDelta(t, 100.0, sumFloat, 1e-6)
}

func TestBuildClassification_AccumulatedWalk(t *testing.T) {
	tenantID := uuid.New()
	sales := map[uuid.UUID]ProductSalesTotals{
		uuid.New(): salesTotals(1, 40),
		uuid.New(): salesTotals(1, 30),
		uuid.New(): salesTotals(1, 20),
		uuid.New(): salesTotals(1, 10),
	}

	rows := BuildClassification(tenantID, sales, nil, time.Now())
	require.Len(t, rows, 4)

	prev := decimal.Zero
	for _, row := range rows {
		assert.True(t, row.AccumulatedPct.GreaterThanOrEqual(prev),
			"accumulated percentage must be non-decreasing")
		prev = row.AccumulatedPct
	}

	last, _ := rows[len(rows)-1].AccumulatedPct.Float64()
	assert.InDelta(t, 100.0, last, 1e-6)

	// Revenue-descending order is reflected in the rows themselves.
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i-1].TotalSoldAmount.GreaterThanOrEqual(rows[i].TotalSoldAmount))
	}
}

func TestBuildClassification_BoundaryProductKeepsStartingClass(t *testing.T) {
	tenantID := uuid.New()
	top := uuid.New()
	crosser := uuid.New()
	tail := uuid.New()

	// Cumulative walk: 65 -> 75 -> 100. The product that carries the total
	// across 70 started below the A limit and stays A.
	sales := map[uuid.UUID]ProductSalesTotals{
		top:     salesTotals(1, 65),
		crosser: salesTotals(1, 10),
		tail:    salesTotals(1, 25),
	}

	rows := BuildClassification(tenantID, sales, nil, time.Now())
	require.Len(t, rows, 3)

	byProduct := make(map[uuid.UUID]ProductClassification, len(rows))
	for _, row := range rows {
		byProduct[row.ProductID] = row
	}

	assert.Equal(t, ClassA, byProduct[top].Classification)
	assert.Equal(t, ClassA, byProduct[crosser].Classification, "65->75 crosser stays class A")
	assert.Equal(t, ClassB, byProduct[tail].Classification, "75->100 crosser starts in the B band")
}

func TestBuildClassification_BandAssignment(t *testing.T) {
	tenantID := uuid.New()
	p1, p2, p3, p4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	// Walk: 70 (A), 88 (B), 96 (started at 88 -> B), 100 (C).
	sales := map[uuid.UUID]ProductSalesTotals{
		p1: salesTotals(1, 70),
		p2: salesTotals(1, 18),
		p3: salesTotals(1, 8),
		p4: salesTotals(1, 4),
	}

	rows := BuildClassification(tenantID, sales, nil, time.Now())
	require.Len(t, rows, 4)

	byProduct := make(map[uuid.UUID]Class, len(rows))
	for _, row := range rows {
		byProduct[row.ProductID] = row.Classification
	}

	assert.Equal(t, ClassA, byProduct[p1])
	assert.Equal(t, ClassB, byProduct[p2])
	assert.Equal(t, ClassB, byProduct[p3], "88->96 crosser starts below the B limit and stays B")
	assert.Equal(t, ClassC, byProduct[p4])
}

func TestBuildClassification_Turnover(t *testing.T) {
	tenantID := uuid.New()
	sold := uuid.New()
	outOfStock := uuid.New()

	sales := map[uuid.UUID]ProductSalesTotals{
		sold:       salesTotals(45, 900),
		outOfStock: salesTotals(100, 100),
	}
	stock := map[uuid.UUID]decimal.Decimal{
		sold: decimal.NewFromInt(10),
		// outOfStock has no lots at all
	}

	rows := BuildClassification(tenantID, sales, stock, time.Now())
	require.Len(t, rows, 2)

	byProduct := make(map[uuid.UUID]ProductClassification, len(rows))
	for _, row := range rows {
		byProduct[row.ProductID] = row
	}

	assert.True(t, byProduct[sold].TurnoverRate.Equal(decimal.NewFromFloat(4.5)))
	assert.True(t, byProduct[sold].AverageStock.Equal(decimal.NewFromInt(10)))
	assert.True(t, byProduct[outOfStock].TurnoverRate.IsZero(),
		"turnover is zero whenever stock is zero, regardless of quantity sold")
}

func TestBuildClassification_NegativeStockYieldsZeroTurnover(t *testing.T) {
	tenantID := uuid.New()
	productID := uuid.New()

	sales := map[uuid.UUID]ProductSalesTotals{
		productID: salesTotals(10, 100),
	}
	stock := map[uuid.UUID]decimal.Decimal{
		// Adjustment lots can drive the signed sum negative.
		productID: decimal.NewFromInt(-3),
	}

	rows := BuildClassification(tenantID, sales, stock, time.Now())
	require.Len(t, rows, 1)
	assert.True(t, rows[0].TurnoverRate.IsZero())
	assert.True(t, rows[0].AverageStock.Equal(decimal.NewFromInt(-3)))
}

func TestParseClass(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Class
	}{
		{"A", ClassA}, {"b", ClassB}, {"C", ClassC},
	} {
		got, err := ParseClass(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseClass("D")
	require.Error(t, err)
}
