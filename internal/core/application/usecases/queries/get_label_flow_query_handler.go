package queries

import (
	"context"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/domain/model/kernel"
)

// SessionFinder looks up running label flows.
type SessionFinder interface {
	Get(id kernel.UUID) (*labelsession.Session, error)
}

// GetLabelFlowQueryHandler returns a session snapshot. Reading does not
// change the session; two reads with no event in between are equal.
type GetLabelFlowQueryHandler struct {
	sessions SessionFinder
}

func NewGetLabelFlowQueryHandler(sessions SessionFinder) GetLabelFlowQueryHandler {
	return GetLabelFlowQueryHandler{sessions: sessions}
}

func (h GetLabelFlowQueryHandler) Handle(_ context.Context, query GetLabelFlowQuery) (labelsession.View, error) {
	if err := query.Validate(); err != nil {
		return labelsession.View{}, err
	}

	s, err := h.sessions.Get(query.SessionID())
	if err != nil {
		return labelsession.View{}, err
	}
	return s.View(), nil
}
