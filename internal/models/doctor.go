package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// TimeList is a doctor's recurring daily slot template, e.g.
// ["09:00", "10:00 AM"]. It is stored as a JSON column and is never
// mutated by booking; booked slots are filtered out per query.
type TimeList []string

// Value implements driver.Valuer so GORM can persist the slice as JSON.
func (t TimeList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for reading the JSON column back.
func (t *TimeList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}
	return errors.New("unsupported type for TimeList")
}

// Doctor represents a doctor account with its availability template
type Doctor struct {
	BaseModel
	Name           string   `gorm:"size:100;not null" json:"name"`
	Specialty      string   `gorm:"size:100;index" json:"specialty"`
	Email          string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string   `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	AvailableTimes TimeList `gorm:"type:json" json:"availableTimes"`
}

// SetPassword hashes a password and sets it on the doctor
func (d *Doctor) SetPassword(password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	d.Password = hashed
	return nil
}

// CheckPassword compares a password with the doctor's hashed password
func (d *Doctor) CheckPassword(password string) bool {
	return checkPassword(d.Password, password)
}
