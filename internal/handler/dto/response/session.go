package response

import (
	"time"

	"lanebook/internal/domain/session"
	"lanebook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SessionResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	AvailableSlots int32     `json:"available_slots"`
	ReservedCount  int32     `json:"reserved_count"`
}

func FromSessionViews(items []queries.SessionView) ([]*SessionResponse, error) {
	res := make([]*SessionResponse, len(items))
	for i := range items {
		var resp SessionResponse
		if err := copier.Copy(&resp, &items[i]); err != nil {
			return nil, err
		}
		res[i] = &resp
	}
	return res, nil
}

func FromSession(s *session.Session) *SessionResponse {
	return &SessionResponse{
		ID:             s.ID(),
		Title:          s.Title(),
		Start:          s.Start(),
		End:            s.End(),
		AvailableSlots: s.AvailableSlots(),
	}
}
