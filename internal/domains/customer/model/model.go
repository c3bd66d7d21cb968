package model

import "zimmery/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldIDNumber    = "id_number"
	FieldPhoneNumber = "phone_number"
	FieldEmail       = "email"
)

// Customer is uniquely resolvable by id number OR phone number; creation paths
// must check both before inserting a new row.
type Customer struct {
	ID          string `db:"id"`
	FullName    string `db:"full_name"`
	IDNumber    string `db:"id_number"`
	PhoneNumber string `db:"phone_number"`
	Email       string `db:"email"`
	model.Metadata
}
