package models

import "time"

type Room struct {
	ID         string     `json:"id"`
	RoomNumber string     `json:"room_number"`
	RoomType   string     `json:"room_type"`
	Capacity   int        `json:"capacity"`
	Price      float64    `json:"price"`
	Status     RoomStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}
