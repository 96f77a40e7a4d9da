package http

import (
	"time"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address is the wire form of kernel.Address.
type Address struct {
	Name       string `json:"name,omitempty"`
	Company    string `json:"company,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street1    string `json:"street1,omitempty"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

func (a Address) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(kernel.AddressFields{
		Name:       a.Name,
		Company:    a.Company,
		Phone:      a.Phone,
		Street1:    a.Street1,
		Street2:    a.Street2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	})
}

func addressFromDomain(a kernel.Address) Address {
	f := a.Fields()
	return Address{
		Name:       f.Name,
		Company:    f.Company,
		Phone:      f.Phone,
		Street1:    f.Street1,
		Street2:    f.Street2,
		City:       f.City,
		Region:     f.Region,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	ID       string  `json:"id"`
	Origin   Address `json:"origin"`
	Shipping Address `json:"shipping"`
}

// PendingOrder is one item of GET /api/v1/orders/pending.
type PendingOrder struct {
	ID        string    `json:"id"`
	Origin    Address   `json:"origin"`
	Shipping  Address   `json:"shipping"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLabelFlow is the body of POST /api/v1/labels.
type NewLabelFlow struct {
	OrderID string `json:"orderId"`
}

// FlowData is the wizard snapshot of a loaded flow.
type FlowData struct {
	Origin    Address              `json:"origin"`
	Shipping  Address              `json:"shipping"`
	StepsDone []string `json:"stepsDone"`
}

// Effect is the pending side effect of a flow. Only the fields of its type
// are set.
type Effect struct {
	Type      labelflow.EffectKind `json:"type"`
	OrderID   string               `json:"orderId,omitempty"`
	Error     string               `json:"error,omitempty"`
	Address   *Address             `json:"address,omitempty"`
	Entered   *Address             `json:"entered,omitempty"`
	Suggested *Address             `json:"suggested,omitempty"`
	Data      *FlowData            `json:"data,omitempty"`
}

// LabelFlow is the client view of one session.
type LabelFlow struct {
	ID             string                `json:"id"`
	OrderID        string                `json:"orderId"`
	State          labelflow.StateKind   `json:"state"`
	Data           *FlowData             `json:"data,omitempty"`
	Effect         Effect                `json:"effect"`
	AcceptedEvents []labelflow.EventKind `json:"acceptedEvents"`
	Completed      bool                  `json:"completed"`
	LastActivity   time.Time             `json:"lastActivity"`
}

func flowDataFromDomain(d labelflow.Data) *FlowData {
	steps := d.StepsDone().Steps()
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.String()
	}
	return &FlowData{
		Origin:    addressFromDomain(d.OriginAddress()),
		Shipping:  addressFromDomain(d.ShippingAddress()),
		StepsDone: names,
	}
}

func addressRef(a kernel.Address) *Address {
	dto := addressFromDomain(a)
	return &dto
}

func effectFromDomain(effect labelflow.SideEffect) Effect {
	if effect == nil {
		return Effect{Type: labelflow.EffectNoOp}
	}

	out := Effect{Type: effect.Kind()}
	switch e := effect.(type) {
	case labelflow.LoadData:
		out.OrderID = e.OrderID
	case labelflow.ShowError:
		if e.Err != nil {
			out.Error = e.Err.Error()
		}
	case labelflow.UpdateViewState:
		out.Data = flowDataFromDomain(e.Data)
	case labelflow.ValidateAddress:
		out.Address = addressRef(e.Address)
	case labelflow.ShowAddressSuggestion:
		out.Entered = addressRef(e.Entered)
		out.Suggested = addressRef(e.Suggested)
	case labelflow.OpenAddressEditor:
		out.Address = addressRef(e.Address)
	}
	return out
}

func labelFlowFromView(v labelsession.View) LabelFlow {
	out := LabelFlow{
		ID:             v.ID.String(),
		OrderID:        v.OrderID,
		State:          v.State.Kind(),
		Effect:         effectFromDomain(v.Effect),
		AcceptedEvents: v.AcceptedEvents,
		Completed:      v.Completed(),
		LastActivity:   v.LastActivity,
	}
	if out.AcceptedEvents == nil {
		out.AcceptedEvents = []labelflow.EventKind{}
	}
	if d, ok := labelflow.DataOf(v.State); ok {
		out.Data = flowDataFromDomain(d)
	}
	return out
}
