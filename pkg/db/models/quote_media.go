package models

// QuoteMedia references an uploaded illustration attached to a quote.
// File storage itself lives outside this service; only the path is kept.
type QuoteMedia struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	QuoteID  int64  `gorm:"column:quote_id;not null;index"`
	PathName string  `gorm:"column:path_name;not null"`
	AltText  *string `gorm:"column:alt_text"`
}

// TableName keeps the historical plural used by the join queries.
func (QuoteMedia) TableName() string {
	return "quote_medias"
}
