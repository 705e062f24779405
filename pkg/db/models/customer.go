package models

// Customer is the recipient of a quote. A customer created through the
// nested quote path is exclusively owned by that quote.
type Customer struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64   `gorm:"column:user_id;not null;index"`
	FirstName *string `gorm:"column:first_name"`
	LastName  *string `gorm:"column:last_name"`
	Street    *string `gorm:"column:street"`
	City      *string `gorm:"column:city"`
	Zip       *int    `gorm:"column:zip"`
	Phone     *string `gorm:"column:phone"`
	Email     *string `gorm:"column:email"`
}
