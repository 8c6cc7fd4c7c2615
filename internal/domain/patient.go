package domain

import (
	"time"
)

var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

type Patient struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Age        int32     `json:"age"`
	BloodGroup string    `json:"bloodGroup"`
	Reason     string    `json:"reason"`
	AmountPaid float64   `json:"amountPaid"`
	VisitDate  string    `json:"visitDate"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}
