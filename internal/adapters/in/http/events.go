package http

import (
	"encoding/json"
	"fmt"

	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/pkg/errs"

	"github.com/tidwall/gjson"
)

// clientEvents are the events a client may send. The others are produced
// by the session itself from collaborator results.
var clientEvents = map[labelflow.EventKind]bool{
	labelflow.EventAddressUsedAsIs:                  true,
	labelflow.EventAddressEditFinished:              true,
	labelflow.EventSuggestedAddressSelected:         true,
	labelflow.EventOriginAddressValidationStarted:   true,
	labelflow.EventEditOriginAddressRequested:       true,
	labelflow.EventShippingAddressValidationStarted: true,
	labelflow.EventEditShippingAddressRequested:     true,
	labelflow.EventPackageSelectionStarted:          true,
	labelflow.EventEditPackagingRequested:           true,
	labelflow.EventPackagesSelected:                 true,
	labelflow.EventCustomsDeclarationStarted:        true,
	labelflow.EventEditCustomsRequested:             true,
	labelflow.EventCustomsFormFilledOut:             true,
	labelflow.EventShippingCarrierSelectionStarted:  true,
	labelflow.EventEditShippingCarrierRequested:     true,
	labelflow.EventShippingCarrierSelected:          true,
	labelflow.EventPaymentSelectionStarted:          true,
	labelflow.EventEditPaymentRequested:             true,
	labelflow.EventPaymentSelected:                  true,
}

// decodeEvent turns an event envelope into a labelflow.Event.
//
// The envelope is {"type": "<EventKind>"} for signals and
// {"type": "<EventKind>", "address": {...}} for address events. The type is
// read first so the payload is only decoded when the kind needs one.
func decodeEvent(body []byte) (labelflow.Event, error) {
	if !gjson.ValidBytes(body) {
		return nil, errs.NewValueIsInvalidError("event body")
	}

	typ := gjson.GetBytes(body, "type")
	if typ.Type != gjson.String || typ.String() == "" {
		return nil, errs.NewValueIsRequiredError("type")
	}

	kind := labelflow.EventKind(typ.String())
	if !clientEvents[kind] {
		return nil, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a client event", kind))
	}

	if event, ok := labelflow.NewSignal(kind); ok {
		return event, nil
	}

	raw := gjson.GetBytes(body, "address")
	if !raw.IsObject() {
		return nil, errs.NewValueIsRequiredError("address")
	}

	var dto Address
	if err := json.Unmarshal([]byte(raw.Raw), &dto); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("address", err)
	}

	address, err := dto.toDomain()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("address", err)
	}

	event, _ := labelflow.NewAddressEvent(kind, address)
	return event, nil
}
