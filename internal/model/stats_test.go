package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsKeepsRawScalars(t *testing.T) {
	var s Stats
	require.NoError(t, json.Unmarshal([]byte(`{"row_count":1200.0,"min_price":"199.99","avg_price":899.5,"max_rating":null}`), &s))

	assert.Equal(t, "1200.0", string(s.RowCount))
	assert.Equal(t, `"199.99"`, string(s.MinPrice))
	assert.Equal(t, "899.5", string(s.AvgPrice))
	assert.Equal(t, "null", string(s.MaxRating))
	assert.Nil(t, s.MaxPrice, "absent fields stay nil")
}

func TestStatsOddSequenceIsAbsent(t *testing.T) {
	var s Stats
	require.NoError(t, json.Unmarshal([]byte(`{
		"row_count": 3,
		"sentiments": "positive",
		"top_brands": [{"brand": "Acme", "count": "many"}, {"brand": 7}],
		"top_stores": [1, 2]
	}`), &s))

	assert.Equal(t, "3", string(s.RowCount))
	assert.Nil(t, s.Sentiments)
	require.Len(t, s.TopBrands, 2)
	assert.Equal(t, `"many"`, string(s.TopBrands[0].Count))
	assert.Equal(t, "7", string(s.TopBrands[1].Brand))
	assert.Nil(t, s.TopBrands[1].Count)
	assert.Nil(t, s.TopStores)
}

func TestStatsRejectsNonObject(t *testing.T) {
	var s Stats
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`"stats"`), &s))
}

func TestStatsMarshalRoundTripsRawValues(t *testing.T) {
	var s Stats
	require.NoError(t, json.Unmarshal([]byte(`{"row_count":1200,"top_stores":[{"store_name":"Main St","count":120}]}`), &s))

	out, err := json.Marshal(&s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"row_count":1200,"top_stores":[{"store_name":"Main St","count":120}]}`, string(out))
}
