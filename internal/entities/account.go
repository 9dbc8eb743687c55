package entities

import (
	"time"
)

type Account struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	Surname    string    `db:"surname"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Address    string    `db:"address"`
	PostalCode string    `db:"postal_code"`
	City       string    `db:"city"`
	Country    string    `db:"country"`
	BirthDate  string    `db:"birth_date"`
	Password   string    `db:"password"`
	CreatedAt  time.Time `db:"created_at"`
}
