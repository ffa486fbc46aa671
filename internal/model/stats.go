package model

import (
	"github.com/goccy/go-json"
)

// Stats is the precomputed statistics payload served by the stats backend.
// Every field is optional: an absent key stays nil. Scalars are kept as the
// raw JSON text the backend sent, so an unexpected type only affects the
// field itself. Sequences keep the order the backend sent them in.
type Stats struct {
	RowCount json.RawMessage `json:"row_count,omitempty"`

	MinPrice json.RawMessage `json:"min_price,omitempty"`
	MaxPrice json.RawMessage `json:"max_price,omitempty"`
	AvgPrice json.RawMessage `json:"avg_price,omitempty"`

	MinRating json.RawMessage `json:"min_rating,omitempty"`
	MaxRating json.RawMessage `json:"max_rating,omitempty"`
	AvgRating json.RawMessage `json:"avg_rating,omitempty"`

	Sentiments []SentimentCount `json:"sentiments,omitempty"`
	TopBrands  []BrandCount     `json:"top_brands,omitempty"`
	TopStores  []StoreCount     `json:"top_stores,omitempty"`
}

type SentimentCount struct {
	Sentiment json.RawMessage `json:"sentiment,omitempty"`
	Count     json.RawMessage `json:"count,omitempty"`
}

type BrandCount struct {
	Brand json.RawMessage `json:"brand,omitempty"`
	Count json.RawMessage `json:"count,omitempty"`
}

type StoreCount struct {
	StoreName json.RawMessage `json:"store_name,omitempty"`
	Count     json.RawMessage `json:"count,omitempty"`
}

// UnmarshalJSON requires a JSON object and reads every key on its own. A
// sequence that is not an array of objects is treated as absent.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*s = Stats{
		RowCount:  fields["row_count"],
		MinPrice:  fields["min_price"],
		MaxPrice:  fields["max_price"],
		AvgPrice:  fields["avg_price"],
		MinRating: fields["min_rating"],
		MaxRating: fields["max_rating"],
		AvgRating: fields["avg_rating"],
	}
	s.Sentiments = decodeRows[SentimentCount](fields["sentiments"])
	s.TopBrands = decodeRows[BrandCount](fields["top_brands"])
	s.TopStores = decodeRows[StoreCount](fields["top_stores"])

	return nil
}

func decodeRows[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}
	return rows
}
