package request

import (
	"time"

	"lanebook/internal/usecase/commands"
)

type CreateSessionRequest struct {
	Title          string    `json:"title" binding:"required,max=200"`
	Start          time.Time `json:"start" binding:"required"`
	End            time.Time `json:"end" binding:"required"`
	AvailableSlots int32     `json:"available_slots" binding:"required,min=1"`
}

func (r CreateSessionRequest) ToInput() commands.CreateSessionInput {
	return commands.CreateSessionInput{
		Title:          r.Title,
		Start:          r.Start,
		End:            r.End,
		AvailableSlots: r.AvailableSlots,
	}
}
