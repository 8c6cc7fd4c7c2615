package domain

type WardType string

const (
	WardGeneral   WardType = "general"
	WardPrivate   WardType = "private"
	WardICU       WardType = "icu"
	WardEmergency WardType = "emergency"
)

type Room struct {
	ID         int64    `json:"id"`
	Number     string   `json:"number"`
	Floor      int32    `json:"floor"`
	Ward       WardType `json:"ward"`
	Capacity   int32    `json:"capacity"`
	IsOccupied bool     `json:"isOccupied"`
	Version    int32    `json:"-"`
}
