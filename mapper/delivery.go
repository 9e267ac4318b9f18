package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/ubl"
)

// mapDelivery maps the deliver-to party, its location and address (BG-13,
// BG-15) and the actual delivery date (BT-72)
func mapDelivery(c *conversion, s *source, body *ubl.Body) {
	out := &ubl.Delivery{}

	if ev := s.delivery.ActualDelivery; ev != nil && ev.OccurrenceDateTime != nil {
		out.ActualDeliveryDate = c.date("BT-72", ev.OccurrenceDateTime)
	}

	if shipTo := s.delivery.ShipTo; shipTo != nil {
		loc := &ubl.DeliveryLocation{}
		if ids := partyIdentifications(shipTo); len(ids) > 0 {
			id := ids[0].ID
			loc.ID = &id
			if len(ids) > 1 {
				c.warnf("BT-71", "deliver to party has %d location identifiers, only '%s' is kept", len(ids), id.Value)
			}
		}
		if shipTo.Address != nil {
			loc.Address = c.address(shipTo.Address, "BT-80")
		}
		if loc.ID != nil || loc.Address != nil {
			out.DeliveryLocation = loc
		}

		if name := strings.TrimSpace(shipTo.Name); name != "" {
			out.DeliveryParty = &ubl.Party{PartyNames: []ubl.PartyName{{Name: name}}}
		}
	}

	if *out == (ubl.Delivery{}) {
		return
	}
	body.Delivery = out
}
