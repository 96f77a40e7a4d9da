// Package queries holds the read operations of the service.
package queries

import (
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/guard"
)

var ErrGetLabelFlowQueryIsNotConstructed = errors.New(
	"GetLabelFlowQuery must be created via NewGetLabelFlowQuery constructor",
)

// GetLabelFlowQuery reads the current state and pending effect of a session.
type GetLabelFlowQuery struct {
	sessionID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetLabelFlowQuery(sessionID kernel.UUID) (GetLabelFlowQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetLabelFlowQuery{}, err
	}
	return GetLabelFlowQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLabelFlowQuery) Validate() error {
	return q.guard.Validate(ErrGetLabelFlowQueryIsNotConstructed)
}

func (q GetLabelFlowQuery) SessionID() kernel.UUID {
	return q.sessionID
}
