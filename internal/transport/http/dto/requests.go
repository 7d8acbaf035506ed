package dto

import "encoding/json"

type UpsertUserReq struct {
	Email       string          `json:"email" validate:"required"`
	Name        *string         `json:"name"`
	Country     *string         `json:"country"`
	City        *string         `json:"city"`
	Age         *int            `json:"age"`
	Preferences json.RawMessage `json:"preferences"`
}

type LoginReq struct {
	Email string `json:"email" validate:"required"`
}

type RegisterReq struct {
	Email string  `json:"email" validate:"required"`
	Name  *string `json:"name"`
}

type AppendBehaviorReq struct {
	EventType  string          `json:"event_type" validate:"required"`
	Properties json.RawMessage `json:"event_properties"`
}
