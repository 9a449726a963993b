package models

import "time"

const (
	GroupMinSize = 2
	GroupMaxSize = 5
)

type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatorID int64     `json:"creator_id"`
	MemberIDs []int64   `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
}
