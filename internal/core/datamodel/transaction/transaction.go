package transaction

import "time"

type Transaction struct {
	ID          string    `gorm:"primaryKey;column:id"`
	UserID      string    `gorm:"column:user_id;not null;index"`
	Type        string    `gorm:"column:type;not null"`
	Amount      float64   `gorm:"column:amount;not null"`
	Category    string    `gorm:"column:category"`
	Description string    `gorm:"column:description;not null"`
	Date        time.Time `gorm:"column:date;not null;index"`
	Timestamp   time.Time `gorm:"column:timestamp;not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}
