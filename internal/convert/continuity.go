package convert

import "tripcal/internal/model"

// stayIsFinalLeg reports whether a lodging check-in is the last leg of the
// stay. A split or back-to-back reservation shows up as another check-in on
// this stay's checkout date; in that case the two stays tile seamlessly and
// this leg must not claim the boundary day.
func stayIsFinalLeg(checkIn model.PlanItem, days []model.Day) bool {
	checkout, ok := checkIn.EndDate.Get()
	if !ok {
		return true
	}
	for _, day := range days {
		if day.Date != checkout {
			continue
		}
		for _, p := range day.Plans {
			if p.ID == checkIn.ID {
				continue
			}
			if p.Type == model.TypeResort && p.HasSubType(model.SubTypeRoomCheckIn) {
				return false
			}
		}
	}
	return true
}
